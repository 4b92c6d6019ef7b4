package unavailability

import (
	"time"

	"coach-flow/internal/domain/timeslot"

	"github.com/google/uuid"
)

// Window is a trainer-declared period during which no booking may exist.
// Windows owned by the same trainer may overlap each other.
type Window struct {
	id        uuid.UUID
	trainerID uuid.UUID
	slot      timeslot.Slot
	createdAt time.Time
	updatedAt time.Time
}

func NewWindow(trainerID uuid.UUID, slot timeslot.Slot) *Window {
	return &Window{
		id:        uuid.New(),
		trainerID: trainerID,
		slot:      slot,
	}
}

func ReconstructWindow(id, trainerID uuid.UUID, slot timeslot.Slot, createdAt, updatedAt time.Time) *Window {
	return &Window{
		id:        id,
		trainerID: trainerID,
		slot:      slot,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (w *Window) Reschedule(slot timeslot.Slot) {
	w.slot = slot
}

func (w *Window) ID() uuid.UUID        { return w.id }
func (w *Window) TrainerID() uuid.UUID { return w.trainerID }
func (w *Window) Slot() timeslot.Slot  { return w.slot }
func (w *Window) CreatedAt() time.Time { return w.createdAt }
func (w *Window) UpdatedAt() time.Time { return w.updatedAt }
