package repository

import (
	"context"

	"coach-flow/internal/domain/ban"
	"coach-flow/internal/infra/db"
)

type BanRepository struct{}

func NewBanRepository() *BanRepository {
	return &BanRepository{}
}

// One row per (client, trainer) pair; a repeat offense moves banned_until
// instead of stacking rows.
const upsertBanSQL = `
INSERT INTO booking_bans (client_id, trainer_id, banned_until)
VALUES ($1, $2, $3)
ON CONFLICT (client_id, trainer_id)
DO UPDATE SET banned_until = EXCLUDED.banned_until, updated_at = now()`

func (r *BanRepository) Upsert(ctx context.Context, tx db.DBTX, b *ban.Ban) error {
	_, err := tx.Exec(ctx, upsertBanSQL, b.ClientID(), b.TrainerID(), b.BannedUntil())
	if err != nil {
		return wrapWriteErr("failed to upsert ban", err)
	}
	return nil
}
