package commands

import (
	"context"
	"time"

	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/domain/unavailability"
	"coach-flow/internal/infra"
	"coach-flow/internal/pkg/errs"
	"coach-flow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow           = errs.New("start time must be before end time")
	ErrAcceptedBookingInWindow = errs.New("accepted booking exists inside the window")
	ErrUnavailabilityNotFound  = errs.New("unavailability not found")
)

type UnavailabilityCommands interface {
	CreateUnavailability(ctx context.Context, trainerID uuid.UUID, startTime, endTime time.Time) (uuid.UUID, error)
	RescheduleUnavailability(ctx context.Context, trainerID, windowID uuid.UUID, startTime, endTime time.Time) error
	DeleteUnavailability(ctx context.Context, trainerID, windowID uuid.UUID) error
}

type unavailabilityCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUnavailabilityCommands(uow shared.UnitOfWork) UnavailabilityCommands {
	return &unavailabilityCommandsImpl{uow: uow}
}

// CreateUnavailability declares a blackout window. Overlap with the trainer's
// own existing windows is permitted; an ACCEPTED booking inside the window is
// not, since the trainer already committed to that session.
func (u *unavailabilityCommandsImpl) CreateUnavailability(
	ctx context.Context,
	trainerID uuid.UUID,
	startTime, endTime time.Time,
) (uuid.UUID, error) {
	slot, err := timeslot.New(startTime, endTime)
	if err != nil {
		return uuid.Nil, ErrInvalidWindow
	}

	var windowID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.ensureNoAcceptedBooking(ctx, tx, trainerID, slot); err != nil {
			return err
		}

		windowID, err = tx.Unavailabilities().Create(ctx, tx.DB(), unavailability.NewWindow(trainerID, slot))
		if err != nil {
			return errs.Wrap(err, "failed to create unavailability")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return windowID, nil
}

func (u *unavailabilityCommandsImpl) RescheduleUnavailability(
	ctx context.Context,
	trainerID, windowID uuid.UUID,
	startTime, endTime time.Time,
) error {
	slot, err := timeslot.New(startTime, endTime)
	if err != nil {
		return ErrInvalidWindow
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.loadOwnedWindow(ctx, tx, trainerID, windowID); err != nil {
			return err
		}
		if err := u.ensureNoAcceptedBooking(ctx, tx, trainerID, slot); err != nil {
			return err
		}
		if err := tx.Unavailabilities().UpdateSlot(ctx, tx.DB(), windowID, slot); err != nil {
			return errs.Wrap(err, "failed to reschedule unavailability")
		}
		return nil
	})
}

func (u *unavailabilityCommandsImpl) DeleteUnavailability(ctx context.Context, trainerID, windowID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.loadOwnedWindow(ctx, tx, trainerID, windowID); err != nil {
			return err
		}
		if err := tx.Unavailabilities().Delete(ctx, tx.DB(), windowID); err != nil {
			return errs.Wrap(err, "failed to delete unavailability")
		}
		return nil
	})
}

// A window owned by another trainer is reported as not found.
func (u *unavailabilityCommandsImpl) loadOwnedWindow(ctx context.Context, tx shared.Tx, trainerID, windowID uuid.UUID) error {
	snap, err := tx.Reads().UnavailabilityByID(ctx, windowID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnavailabilityNotFound
		}
		return errs.Wrap(err, "failed to load unavailability")
	}
	if snap.TrainerID != trainerID {
		return ErrUnavailabilityNotFound
	}
	return nil
}

func (u *unavailabilityCommandsImpl) ensureNoAcceptedBooking(ctx context.Context, tx shared.Tx, trainerID uuid.UUID, slot timeslot.Slot) error {
	occupied, err := tx.Reads().AcceptedBookingExists(ctx, trainerID, slot)
	if err != nil {
		return errs.Wrap(err, "failed to check accepted bookings")
	}
	if occupied {
		return ErrAcceptedBookingInWindow
	}
	return nil
}
