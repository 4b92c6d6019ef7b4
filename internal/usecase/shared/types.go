package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads

type BookingSnapshot struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	TrainerID uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	TrainerID       uuid.UUID
	Name            string
	DurationMinutes int32
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type UnavailabilitySnapshot struct {
	ID        uuid.UUID
	TrainerID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}
