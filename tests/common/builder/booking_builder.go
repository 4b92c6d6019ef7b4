//go:build unit || e2e

package builder

import (
	"time"

	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/handler/dto/request"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ClientID  uuid.UUID
	TrainerID uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	Duration  time.Duration
	Status    booking.Status
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ClientID:  uuid.New(),
		TrainerID: uuid.New(),
		ServiceID: uuid.New(),
		StartTime: now.Add(24 * time.Hour),
		Duration:  time.Hour,
		Status:    booking.StatusPending,
		Now:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := timeslot.New(b.StartTime, b.StartTime.Add(b.Duration))
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ClientID, b.TrainerID, b.ServiceID, slot, b.Now)
}

// BuildReconstructed skips creation-time validation so past slots and
// non-pending statuses can be set up directly.
func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	slot, _ := timeslot.New(b.StartTime, b.StartTime.Add(b.Duration))
	return booking.ReconstructBooking(
		uuid.New(), b.ClientID, b.TrainerID, b.ServiceID,
		slot, b.Status, nil, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		TrainerID: b.TrainerID,
		ServiceID: b.ServiceID,
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		ClientID:     b.ClientID,
		ClientEmail:  "client@example.com",
		TrainerID:    b.TrainerID,
		TrainerEmail: "trainer@example.com",
		ServiceID:    b.ServiceID,
		ServiceName:  "Personal Training",
		StartTime:    b.StartTime,
		EndTime:      b.StartTime.Add(b.Duration),
		Status:       b.Status.String(),
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          uuid.New(),
		ClientID:    b.ClientID,
		TrainerID:   b.TrainerID,
		ServiceID:   b.ServiceID,
		ServiceName: "Personal Training",
		StartTime:   b.StartTime,
		EndTime:     b.StartTime.Add(b.Duration),
		Status:      b.Status.String(),
		CreatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithTrainerID(id uuid.UUID) *BookingBuilder {
	b.TrainerID = id
	return b
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithStartTime(t time.Time) *BookingBuilder {
	b.StartTime = t
	return b
}

func (b *BookingBuilder) WithDuration(d time.Duration) *BookingBuilder {
	b.Duration = d
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
