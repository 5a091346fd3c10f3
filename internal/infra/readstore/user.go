package readstore

import (
	"context"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/pkg/pgconv"
	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

const findUserByIDSQL = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1
`

const findUserByEmailSQL = `
SELECT id, email, role, is_active, password_hash
FROM users
WHERE email = $1
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}
