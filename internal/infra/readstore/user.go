package readstore

import (
	"context"

	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/pkg/pgconv"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const findUserByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

const findUserByEmailSQL = `
SELECT id, email, role, is_active, password_hash
FROM users
WHERE email = $1`

// FindByEmail returns the view and the password hash separately so the hash
// never rides along on a read model.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

const findUsersByRoleSQL = `
SELECT id, email, role, is_active
FROM users
WHERE role = $1 AND is_active
ORDER BY email`

func (r *UserReadStore) FindByRole(ctx context.Context, role string) ([]*queries.AuthorizedUserView, error) {
	rows, err := r.db.Query(ctx, findUsersByRoleSQL, role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by role", err)
	}
	defer rows.Close()

	var result []*queries.AuthorizedUserView
	for rows.Next() {
		var view queries.AuthorizedUserView
		if err := rows.Scan(&view.ID, &view.Email, &view.Role, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}
