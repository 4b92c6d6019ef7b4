package ban

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBannedUntilInPast = errors.New("banned until must be in the future")

// Ban bars a client from booking with a trainer until a point in time.
// One row exists per (client, trainer) pair; repeat offenses replace
// bannedUntil rather than stacking rows.
type Ban struct {
	clientID    uuid.UUID
	trainerID   uuid.UUID
	bannedUntil time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBan(clientID, trainerID uuid.UUID, bannedUntil, now time.Time) (*Ban, error) {
	if !bannedUntil.After(now) {
		return nil, ErrBannedUntilInPast
	}
	return &Ban{
		clientID:    clientID,
		trainerID:   trainerID,
		bannedUntil: bannedUntil,
	}, nil
}

func ReconstructBan(clientID, trainerID uuid.UUID, bannedUntil time.Time, createdAt, updatedAt time.Time) *Ban {
	return &Ban{
		clientID:    clientID,
		trainerID:   trainerID,
		bannedUntil: bannedUntil,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ActiveAt reports whether the ban is in force at t. A ban is active iff
// bannedUntil is strictly in the future relative to t.
func (b *Ban) ActiveAt(t time.Time) bool {
	return b.bannedUntil.After(t)
}

func (b *Ban) ClientID() uuid.UUID     { return b.clientID }
func (b *Ban) TrainerID() uuid.UUID    { return b.trainerID }
func (b *Ban) BannedUntil() time.Time  { return b.bannedUntil }
func (b *Ban) CreatedAt() time.Time    { return b.createdAt }
func (b *Ban) UpdatedAt() time.Time    { return b.updatedAt }
