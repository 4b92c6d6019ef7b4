package readstore

import (
	"context"
	"time"

	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/pkg/pgconv"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnavailabilityReadStore struct {
	db db.DBTX
}

func NewUnavailabilityReadStore(db db.DBTX) *UnavailabilityReadStore {
	return &UnavailabilityReadStore{db: db}
}

const findUnavailabilityByIDSQL = `
SELECT id, trainer_id, lower(slot), upper(slot), created_at, updated_at
FROM unavailabilities
WHERE id = $1`

func (r *UnavailabilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnavailabilityView, error) {
	var view queries.UnavailabilityView
	err := r.db.QueryRow(ctx, findUnavailabilityByIDSQL, id).Scan(
		&view.ID, &view.TrainerID, &view.StartTime, &view.EndTime,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unavailability not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unavailability by ID", err)
	}
	return &view, nil
}

const findUnavailabilitiesByTrainerSQL = `
SELECT id, trainer_id, lower(slot), upper(slot), created_at, updated_at
FROM unavailabilities
WHERE trainer_id = $1
ORDER BY lower(slot)`

func (r *UnavailabilityReadStore) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*queries.UnavailabilityView, error) {
	rows, err := r.db.Query(ctx, findUnavailabilitiesByTrainerSQL, trainerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find unavailabilities by trainer", err)
	}
	defer rows.Close()

	var result []*queries.UnavailabilityView
	for rows.Next() {
		var view queries.UnavailabilityView
		if err := rows.Scan(
			&view.ID, &view.TrainerID, &view.StartTime, &view.EndTime,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unavailability row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unavailability rows", err)
	}
	return result, nil
}

const unavailabilityExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM unavailabilities
    WHERE trainer_id = $1
      AND slot && tstzrange($2, $3, '[)')
)`

func (r *UnavailabilityReadStore) OverlapExists(ctx context.Context, trainerID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, unavailabilityExistsSQL, trainerID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check unavailability overlap", err)
	}
	return exists, nil
}
