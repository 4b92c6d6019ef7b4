package booking

import (
	"errors"
	"time"

	"coach-flow/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrStartTimeInPast = errors.New("cannot book a time in the past")
	ErrNotPending      = errors.New("booking is not in PENDING status")
	ErrNotCancellable  = errors.New("booking is not in ACCEPTED or PENDING status")
	ErrNotParticipant  = errors.New("actor is not a party to the booking")
)

const (
	// A client cancelling an accepted session that starts within this
	// window is penalized with a booking ban.
	LateCancellationWindow = 12 * time.Hour
	BanPeriod              = 7 * 24 * time.Hour
)

type Booking struct {
	id             uuid.UUID
	clientID       uuid.UUID
	trainerID      uuid.UUID
	serviceID      uuid.UUID
	slot           timeslot.Slot
	status         Status
	reminderSentAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a pending reservation. The slot end is derived from the
// service duration by the caller; now comes from the injected clock.
func NewBooking(clientID, trainerID, serviceID uuid.UUID, slot timeslot.Slot, now time.Time) (*Booking, error) {
	if !slot.Start().After(now) {
		return nil, ErrStartTimeInPast
	}

	return &Booking{
		id:        uuid.New(),
		clientID:  clientID,
		trainerID: trainerID,
		serviceID: serviceID,
		slot:      slot,
		status:    StatusPending,
	}, nil
}

func ReconstructBooking(
	id, clientID, trainerID, serviceID uuid.UUID,
	slot timeslot.Slot,
	status Status,
	reminderSentAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		clientID:       clientID,
		trainerID:      trainerID,
		serviceID:      serviceID,
		slot:           slot,
		status:         status,
		reminderSentAt: reminderSentAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Approve confirms a pending booking. Ownership is checked by the caller.
func (b *Booking) Approve() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusAccepted
	return nil
}

func (b *Booking) Reject() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusRejected
	return nil
}

// CancellationResult reports the ban side effect a cancellation produced.
type CancellationResult struct {
	BansClient  bool
	BannedUntil time.Time
}

// Cancel transitions the booking to CANCELLED. Only the client backing out of
// an ACCEPTED session within the lateness window is penalized; cancelling a
// still-pending request is free regardless of timing, and trainer-initiated
// cancellations never ban.
func (b *Booking) Cancel(actorID uuid.UUID, now time.Time) (*CancellationResult, error) {
	if actorID != b.clientID && actorID != b.trainerID {
		return nil, ErrNotParticipant
	}
	if b.status != StatusPending && b.status != StatusAccepted {
		return nil, ErrNotCancellable
	}

	wasAccepted := b.status == StatusAccepted
	b.status = StatusCancelled

	result := &CancellationResult{}
	if actorID == b.clientID && wasAccepted && !b.slot.Start().After(now.Add(LateCancellationWindow)) {
		result.BansClient = true
		result.BannedUntil = now.Add(BanPeriod)
	}
	return result, nil
}

func (b *Booking) IsParticipant(actorID uuid.UUID) bool {
	return actorID == b.clientID || actorID == b.trainerID
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) TrainerID() uuid.UUID      { return b.trainerID }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) Slot() timeslot.Slot       { return b.slot }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) ReminderSentAt() *time.Time { return b.reminderSentAt }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
