package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/infra/readstore"
	"coach-flow/internal/infra/repository"
	"coach-flow/internal/pkg/clock"
	"coach-flow/internal/pkg/errs"
	"coach-flow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewPostgresUoW(pool *pgxpool.Pool, clock clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		clock: clock,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinSerializable serves check-then-insert flows. Serialization failures
// surface as 40001 and go through the same retry loop as deadlocks.
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo        shared.BookingRepository
	unavailabilityRepo shared.UnavailabilityRepository
	banRepo            shared.BanRepository
	userRepo           shared.UserRepository
	commandReads       shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository()
	}
	return t.bookingRepo
}

func (t *pgTx) Unavailabilities() shared.UnavailabilityRepository {
	if t.unavailabilityRepo == nil {
		t.unavailabilityRepo = repository.NewUnavailabilityRepository()
	}
	return t.unavailabilityRepo
}

func (t *pgTx) Bans() shared.BanRepository {
	if t.banRepo == nil {
		t.banRepo = repository.NewBanRepository()
	}
	return t.banRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx db.DBTX

	// Lazy-initialized readstores
	bookingStore        *readstore.BookingReadStore
	serviceStore        *readstore.ServiceReadStore
	userStore           *readstore.UserReadStore
	unavailabilityStore *readstore.UnavailabilityReadStore
	banStore            *readstore.BanReadStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) unavailabilities() *readstore.UnavailabilityReadStore {
	if r.unavailabilityStore == nil {
		r.unavailabilityStore = readstore.NewUnavailabilityReadStore(r.dbtx)
	}
	return r.unavailabilityStore
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	view, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.BookingSnapshot{
		ID:        view.ID,
		ClientID:  view.ClientID,
		TrainerID: view.TrainerID,
		ServiceID: view.ServiceID,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
		Status:    view.Status,
	}, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	if r.serviceStore == nil {
		r.serviceStore = readstore.NewServiceReadStore(r.dbtx)
	}

	view, err := r.serviceStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ServiceSnapshot{
		ID:              view.ID,
		TrainerID:       view.TrainerID,
		Name:            view.Name,
		DurationMinutes: view.DurationMinutes,
	}, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	view, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		IsActive: view.IsActive,
	}, nil
}

func (r *commandReads) UnavailabilityByID(ctx context.Context, id uuid.UUID) (*shared.UnavailabilitySnapshot, error) {
	view, err := r.unavailabilities().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.UnavailabilitySnapshot{
		ID:        view.ID,
		TrainerID: view.TrainerID,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
	}, nil
}

func (r *commandReads) ActiveBanExists(ctx context.Context, clientID, trainerID uuid.UUID) (bool, error) {
	if r.banStore == nil {
		r.banStore = readstore.NewBanReadStore(r.dbtx)
	}
	return r.banStore.ActiveExists(ctx, clientID, trainerID, r.uow.clock.Now())
}

func (r *commandReads) BlockingBookingExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error) {
	return r.bookings().BlockingExists(ctx, trainerID, slot.Start(), slot.End())
}

func (r *commandReads) AcceptedBookingExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error) {
	return r.bookings().AcceptedExists(ctx, trainerID, slot.Start(), slot.End())
}

func (r *commandReads) UnavailabilityExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error) {
	return r.unavailabilities().OverlapExists(ctx, trainerID, slot.Start(), slot.End())
}
