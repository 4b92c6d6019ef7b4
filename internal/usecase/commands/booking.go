package commands

import (
	"context"
	"time"

	"coach-flow/internal/domain/ban"
	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/domain/user"
	"coach-flow/internal/infra"
	"coach-flow/internal/pkg/clock"
	"coach-flow/internal/pkg/errs"
	"coach-flow/internal/usecase/queries"
	"coach-flow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPastTime               = errs.New("cannot book a time in the past")
	ErrClientBanned           = errs.New("client is banned from booking with this trainer")
	ErrServiceNotFound        = errs.New("service not found")
	ErrServiceTrainerMismatch = errs.New("service does not belong to the trainer")
	ErrTrainerNotFound        = errs.New("trainer not found")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrBookingNotPending      = errs.New("booking is not in PENDING status")
	ErrBookingNotCancellable  = errs.New("booking is not in ACCEPTED or PENDING status")
	ErrBookingOperationFailed = errs.New("booking operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, clientID, trainerID, serviceID uuid.UUID, startTime time.Time) (*queries.BookingView, error)
	ApproveBooking(ctx context.Context, trainerID, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, trainerID, bookingID uuid.UUID) error
	CancelBooking(ctx context.Context, actorID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// CreateBooking runs the whole check-then-insert under a SERIALIZABLE
// transaction. The exclusion constraint on bookings backs the availability
// check up: a race loser surfaces as KindConflict and maps to the same
// ErrSlotUnavailable the check itself produces.
func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	clientID, trainerID, serviceID uuid.UUID,
	startTime time.Time,
) (*queries.BookingView, error) {
	now := b.clock.Now()
	if !startTime.After(now) {
		return nil, ErrPastTime
	}

	var bookingID uuid.UUID
	err := b.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		banned, err := tx.Reads().ActiveBanExists(ctx, clientID, trainerID)
		if err != nil {
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		if banned {
			return ErrClientBanned
		}

		svc, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		if svc.TrainerID != trainerID {
			return ErrServiceTrainerMismatch
		}

		trainer, err := tx.Reads().UserByID(ctx, trainerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTrainerNotFound
			}
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		if trainer.Role != string(user.RoleTrainer) {
			return ErrTrainerNotFound
		}

		slot, err := timeslot.New(startTime, startTime.Add(time.Duration(svc.DurationMinutes)*time.Minute))
		if err != nil {
			return errs.Mark(err, ErrBookingOperationFailed)
		}

		if err := ensureSlotAvailable(ctx, tx.Reads(), trainerID, slot); err != nil {
			return err
		}

		entity, err := booking.NewBooking(clientID, trainerID, serviceID, slot, now)
		if err != nil {
			return errs.Mark(err, ErrPastTime)
		}

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}
	return view, nil
}

// ApproveBooking confirms a pending request. A booking the trainer does not
// own is reported as not found rather than forbidden.
func (b *bookingCommandsImpl) ApproveBooking(ctx context.Context, trainerID, bookingID uuid.UUID) error {
	return b.transition(ctx, bookingID, func(entity *booking.Booking) error {
		if entity.TrainerID() != trainerID {
			return ErrBookingNotFound
		}
		if err := entity.Approve(); err != nil {
			return ErrBookingNotPending
		}
		return nil
	})
}

func (b *bookingCommandsImpl) RejectBooking(ctx context.Context, trainerID, bookingID uuid.UUID) error {
	return b.transition(ctx, bookingID, func(entity *booking.Booking) error {
		if entity.TrainerID() != trainerID {
			return ErrBookingNotFound
		}
		if err := entity.Reject(); err != nil {
			return ErrBookingNotPending
		}
		return nil
	})
}

// CancelBooking handles both parties. A late client cancellation of an
// accepted session upserts a 7-day ban inside the same transaction as the
// status change.
func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, actorID, bookingID uuid.UUID) error {
	now := b.clock.Now()
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !entity.IsParticipant(actorID) {
			return ErrBookingNotFound
		}

		result, err := entity.Cancel(actorID, now)
		if err != nil {
			return ErrBookingNotCancellable
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, ErrBookingOperationFailed)
		}

		if result.BansClient {
			banEntity, err := ban.NewBan(entity.ClientID(), entity.TrainerID(), result.BannedUntil, now)
			if err != nil {
				return errs.Mark(err, ErrBookingOperationFailed)
			}
			if err := tx.Bans().Upsert(ctx, tx.DB(), banEntity); err != nil {
				return errs.Mark(err, ErrBookingOperationFailed)
			}
		}
		return nil
	})
}

func (b *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, apply func(*booking.Booking) error) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := apply(entity); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, ErrBookingOperationFailed)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}

	slot, err := timeslot.New(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingOperationFailed)
	}
	return booking.ReconstructBooking(
		snap.ID, snap.ClientID, snap.TrainerID, snap.ServiceID,
		slot, booking.Status(snap.Status), nil, time.Time{}, time.Time{},
	), nil
}
