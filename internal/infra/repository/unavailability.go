package repository

import (
	"context"

	"coach-flow/internal/domain/timeslot"
	"coach-flow/internal/domain/unavailability"
	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"

	"github.com/google/uuid"
)

type UnavailabilityRepository struct{}

func NewUnavailabilityRepository() *UnavailabilityRepository {
	return &UnavailabilityRepository{}
}

const createUnavailabilitySQL = `
INSERT INTO unavailabilities (id, trainer_id, slot)
VALUES ($1, $2, tstzrange($3, $4, '[)'))
RETURNING id`

func (r *UnavailabilityRepository) Create(ctx context.Context, tx db.DBTX, w *unavailability.Window) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUnavailabilitySQL,
		w.ID(), w.TrainerID(), w.Slot().Start(), w.Slot().End(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create unavailability", err)
	}
	return id, nil
}

const updateUnavailabilitySlotSQL = `
UPDATE unavailabilities
SET slot = tstzrange($2, $3, '[)'), updated_at = now()
WHERE id = $1`

func (r *UnavailabilityRepository) UpdateSlot(ctx context.Context, tx db.DBTX, id uuid.UUID, slot timeslot.Slot) error {
	tag, err := tx.Exec(ctx, updateUnavailabilitySlotSQL, id, slot.Start(), slot.End())
	if err != nil {
		return wrapWriteErr("failed to update unavailability slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unavailability not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteUnavailabilitySQL = `DELETE FROM unavailabilities WHERE id = $1`

func (r *UnavailabilityRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteUnavailabilitySQL, id)
	if err != nil {
		return wrapWriteErr("failed to delete unavailability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unavailability not found", nil, infra.KindNotFound)
	}
	return nil
}
