package queries

import (
	"context"
	"time"

	"coach-flow/internal/domain/booking"
	"coach-flow/internal/domain/user"
	"coach-flow/internal/pkg/clock"
	"coach-flow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrBookingAccessDenied is an explicit Forbidden: the booking exists but
	// the actor is not a party to it. Contrast with the write operations,
	// which report foreign bookings as not found.
	ErrBookingAccessDenied = errs.New("booking access denied")
	ErrInvalidFilter       = errs.New("invalid filter")
)

type TimeFilter string

const (
	TimeFilterUpcoming TimeFilter = "upcoming"
	TimeFilterPast     TimeFilter = "past"
)

// BookingListFilters narrows an actor-scoped listing. Role selects which side
// of the booking the actor is on; nil means either side.
type BookingListFilters struct {
	Status *booking.Status
	Role   *user.Role
	Time   *TimeFilter
}

// BookingSearchCriteria is the storage-level shape of a listing request.
type BookingSearchCriteria struct {
	ActorID     uuid.UUID
	AsClient    bool
	AsTrainer   bool
	Status      *string
	StartsAfter *time.Time
	EndsBefore  *time.Time
	Limit       int32
	Offset      int32
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the participant check for read-after-write
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actorID uuid.UUID, filters BookingListFilters, page, limit int) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Search(ctx context.Context, criteria BookingSearchCriteria) ([]*BookingListItem, error)
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	clock clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.ClientID != actorID && view.TrainerID != actorID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) List(
	ctx context.Context,
	actorID uuid.UUID,
	filters BookingListFilters,
	page, limit int,
) ([]*BookingListItem, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	criteria := BookingSearchCriteria{
		ActorID:   actorID,
		AsClient:  true,
		AsTrainer: true,
		Limit:     int32(limit),
		Offset:    int32((page - 1) * limit),
	}

	if filters.Role != nil {
		switch *filters.Role {
		case user.RoleClient:
			criteria.AsTrainer = false
		case user.RoleTrainer:
			criteria.AsClient = false
		default:
			return nil, ErrInvalidFilter
		}
	}

	if filters.Status != nil {
		if !filters.Status.IsValid() {
			return nil, ErrInvalidFilter
		}
		s := filters.Status.String()
		criteria.Status = &s
	}

	if filters.Time != nil {
		now := q.clock.Now()
		switch *filters.Time {
		case TimeFilterUpcoming:
			criteria.StartsAfter = &now
		case TimeFilterPast:
			criteria.EndsBefore = &now
		default:
			return nil, ErrInvalidFilter
		}
	}

	return q.repo.Search(ctx, criteria)
}
