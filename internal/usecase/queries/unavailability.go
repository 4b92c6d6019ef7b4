package queries

import (
	"context"

	"github.com/google/uuid"
)

type UnavailabilityQueries interface {
	ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*UnavailabilityView, error)
}

type UnavailabilityReadStore interface {
	FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*UnavailabilityView, error)
}

type unavailabilityQueriesImpl struct {
	readStore UnavailabilityReadStore
}

func NewUnavailabilityQueries(readStore UnavailabilityReadStore) UnavailabilityQueries {
	return &unavailabilityQueriesImpl{readStore: readStore}
}

func (q *unavailabilityQueriesImpl) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*UnavailabilityView, error) {
	return q.readStore.FindByTrainerID(ctx, trainerID)
}
