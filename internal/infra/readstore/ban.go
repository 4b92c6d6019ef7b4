package readstore

import (
	"context"
	"time"

	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BanReadStore struct {
	db db.DBTX
}

func NewBanReadStore(db db.DBTX) *BanReadStore {
	return &BanReadStore{db: db}
}

const activeBanExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM booking_bans
    WHERE client_id = $1 AND trainer_id = $2 AND banned_until > $3
)`

// ActiveExists treats a ban as active iff banned_until is strictly after at.
// A row whose banned_until equals at is already expired.
func (r *BanReadStore) ActiveExists(ctx context.Context, clientID, trainerID uuid.UUID, at time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, activeBanExistsSQL, clientID, trainerID, at).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active ban", err)
	}
	return exists, nil
}

const findBansByClientSQL = `
SELECT client_id, trainer_id, banned_until, created_at, updated_at
FROM booking_bans
WHERE client_id = $1
ORDER BY banned_until DESC`

func (r *BanReadStore) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*queries.BanView, error) {
	rows, err := r.db.Query(ctx, findBansByClientSQL, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bans by client", err)
	}
	defer rows.Close()

	var result []*queries.BanView
	for rows.Next() {
		var view queries.BanView
		if err := rows.Scan(
			&view.ClientID, &view.TrainerID, &view.BannedUntil,
			&view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ban row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ban rows", err)
	}
	return result, nil
}
