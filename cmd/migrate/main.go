// Command migrate applies the SQL migrations in migrations/ to the database
// configured through the environment, using the Atlas CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"coach-flow/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("migrations")),
	)
	if err != nil {
		slog.Error("マイグレーションディレクトリの準備に失敗しました", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := workdir.Close(); err != nil {
			slog.Warn("作業ディレクトリの削除に失敗しました", "error", err)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		slog.Error("Atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		slog.Error("マイグレーションの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーションが完了しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
}
