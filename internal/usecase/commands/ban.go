package commands

import (
	"context"
	"time"

	"coach-flow/internal/domain/ban"
	"coach-flow/internal/domain/user"
	"coach-flow/internal/infra"
	"coach-flow/internal/pkg/clock"
	"coach-flow/internal/pkg/errs"
	"coach-flow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound   = errs.New("client not found")
	ErrInvalidBanPeriod = errs.New("banned until must be in the future")
)

// BanCommands is the administrative surface over the ban registry. Bans from
// late cancellations are written by the booking commands; this one exists for
// manual intervention.
type BanCommands interface {
	ImposeBan(ctx context.Context, clientID, trainerID uuid.UUID, bannedUntil time.Time) error
}

type banCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBanCommands(uow shared.UnitOfWork, clock clock.Clock) BanCommands {
	return &banCommandsImpl{uow: uow, clock: clock}
}

func (b *banCommandsImpl) ImposeBan(ctx context.Context, clientID, trainerID uuid.UUID, bannedUntil time.Time) error {
	now := b.clock.Now()

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := b.ensureRole(ctx, tx, clientID, user.RoleClient, ErrClientNotFound); err != nil {
			return err
		}
		if err := b.ensureRole(ctx, tx, trainerID, user.RoleTrainer, ErrTrainerNotFound); err != nil {
			return err
		}

		entity, err := ban.NewBan(clientID, trainerID, bannedUntil, now)
		if err != nil {
			return ErrInvalidBanPeriod
		}

		if err := tx.Bans().Upsert(ctx, tx.DB(), entity); err != nil {
			return errs.Wrap(err, "failed to upsert ban")
		}
		return nil
	})
}

func (b *banCommandsImpl) ensureRole(ctx context.Context, tx shared.Tx, id uuid.UUID, role user.Role, notFound error) error {
	snap, err := tx.Reads().UserByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notFound
		}
		return errs.Wrap(err, "failed to load user")
	}
	if snap.Role != string(role) {
		return notFound
	}
	return nil
}
