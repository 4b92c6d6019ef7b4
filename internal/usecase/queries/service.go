package queries

import (
	"context"

	"github.com/google/uuid"

	"coach-flow/internal/infra"
	"coach-flow/internal/pkg/errs"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*ServiceView, error) {
	return q.readStore.FindByTrainerID(ctx, trainerID)
}
