package commands

import (
	"context"
	"log/slog"

	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/pkg/errs"
	"coach-flow/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrSlotUnavailable is the single error callers see for an occupied slot.
// Whether a booking or a blackout window caused the conflict is logged but
// never exposed.
var ErrSlotUnavailable = errs.New("slot unavailable")

// ensureSlotAvailable checks a trainer's calendar for conflicts with the
// given half-open window. PENDING and ACCEPTED bookings block; REJECTED and
// CANCELLED do not. Unavailability windows always block.
func ensureSlotAvailable(ctx context.Context, reads shared.CommandReads, trainerID uuid.UUID, slot timeslot.Slot) error {
	occupied, err := reads.BlockingBookingExists(ctx, trainerID, slot)
	if err != nil {
		return errs.Wrap(err, "failed to check booking conflicts")
	}
	if occupied {
		slog.Info("slot conflict with existing booking",
			"trainer_id", trainerID, "slot", slot.String())
		return ErrSlotUnavailable
	}

	blacked, err := reads.UnavailabilityExists(ctx, trainerID, slot)
	if err != nil {
		return errs.Wrap(err, "failed to check unavailability conflicts")
	}
	if blacked {
		slog.Info("slot conflict with unavailability window",
			"trainer_id", trainerID, "slot", slot.String())
		return ErrSlotUnavailable
	}

	return nil
}
