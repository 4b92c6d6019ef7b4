package queries

import (
	"context"

	"github.com/google/uuid"
)

type BanQueries interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BanView, error)
}

type BanReadStore interface {
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*BanView, error)
}

type banQueriesImpl struct {
	readStore BanReadStore
}

func NewBanQueries(readStore BanReadStore) BanQueries {
	return &banQueriesImpl{readStore: readStore}
}

func (q *banQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*BanView, error) {
	return q.readStore.FindByClientID(ctx, clientID)
}
