package components

import (
	"coach-flow/internal/infra/db"
	"coach-flow/internal/infra/readstore"
	"coach-flow/internal/infra/uow"
	"coach-flow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewUnavailabilityReadStore,
			fx.As(new(queries.UnavailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBanReadStore,
			fx.As(new(queries.BanReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
