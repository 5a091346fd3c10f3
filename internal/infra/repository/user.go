package repository

import (
	"context"

	"lunchbox/internal/domain/user"
	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
`

const updateUserLastLoginSQL = `
UPDATE users SET last_login = now() WHERE id = $1
`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertUserSQL, u.ID(), u.Email().Value(), u.PasswordHash(), string(u.Role()), u.IsActive())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, updateUserLastLoginSQL, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
