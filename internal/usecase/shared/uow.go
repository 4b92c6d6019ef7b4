package shared

import (
	"context"

	"coach-flow/internal/domain/ban"
	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/domain/unavailability"
	"coach-flow/internal/domain/user"
	"coach-flow/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: SERIALIZABLE transaction for check-then-insert flows
	// where concurrent writers must not both pass the same check
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Unavailabilities() UnavailabilityRepository
	Bans() BanRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UnavailabilityByID(ctx context.Context, id uuid.UUID) (*UnavailabilitySnapshot, error)
	ActiveBanExists(ctx context.Context, clientID, trainerID uuid.UUID) (bool, error)
	// BlockingBookingExists covers PENDING and ACCEPTED rows; slot overlap is
	// evaluated with the half-open semantics of tstzrange &&.
	BlockingBookingExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error)
	AcceptedBookingExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error)
	UnavailabilityExists(ctx context.Context, trainerID uuid.UUID, slot timeslot.Slot) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type UnavailabilityRepository interface {
	Create(ctx context.Context, tx db.DBTX, w *unavailability.Window) (uuid.UUID, error)
	UpdateSlot(ctx context.Context, tx db.DBTX, id uuid.UUID, slot timeslot.Slot) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BanRepository interface {
	// Upsert replaces banned_until for an existing (client, trainer) pair
	Upsert(ctx context.Context, tx db.DBTX, b *ban.Ban) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
