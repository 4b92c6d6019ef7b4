package readstore

import (
	"context"

	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/pkg/pgconv"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

const findServiceByIDSQL = `
SELECT id, trainer_id, name, duration_minutes, created_at, updated_at
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := r.db.QueryRow(ctx, findServiceByIDSQL, id).Scan(
		&view.ID, &view.TrainerID, &view.Name, &view.DurationMinutes,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &view, nil
}

const findServicesByTrainerSQL = `
SELECT id, trainer_id, name, duration_minutes, created_at, updated_at
FROM services
WHERE trainer_id = $1
ORDER BY name`

func (r *ServiceReadStore) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, findServicesByTrainerSQL, trainerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services by trainer", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(
			&view.ID, &view.TrainerID, &view.Name, &view.DurationMinutes,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return result, nil
}
