package repository

import (
	"context"

	"lunchbox/internal/domain/lunch"
	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

const insertLunchSQL = `
INSERT INTO lunches (id, user_id, name, status)
VALUES ($1, $2, $3, $4)
`

const renameLunchSQL = `
UPDATE lunches SET name = $2, updated_at = now() WHERE id = $1
`

const upsertLunchItemSQL = `
INSERT INTO lunch_items (id, lunch_id, product_id, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (lunch_id, product_id)
DO UPDATE SET quantity = $4
`

const setLunchItemQuantitySQL = `
UPDATE lunch_items SET quantity = $2 WHERE id = $1
`

const deleteLunchItemSQL = `
DELETE FROM lunch_items WHERE id = $1
`

type LunchRepository struct{}

func NewLunchRepository() *LunchRepository {
	return &LunchRepository{}
}

func (r *LunchRepository) Create(ctx context.Context, tx db.DBTX, l *lunch.Lunch) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertLunchSQL, l.ID(), l.UserID(), l.Name(), string(l.Status()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lunch", err)
	}

	for _, item := range l.Items() {
		if err := r.UpsertItem(ctx, tx, l.ID(), item); err != nil {
			return uuid.Nil, err
		}
	}

	return l.ID(), nil
}

func (r *LunchRepository) Rename(ctx context.Context, tx db.DBTX, id uuid.UUID, name string) error {
	tag, err := tx.Exec(ctx, renameLunchSQL, id, name)
	if err != nil {
		return infra.WrapRepoErr("failed to rename lunch", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lunch not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LunchRepository) UpsertItem(ctx context.Context, tx db.DBTX, lunchID uuid.UUID, item lunch.Item) error {
	_, err := tx.Exec(ctx, upsertLunchItemSQL, item.ID, lunchID, item.ProductID, item.Quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert lunch item", err)
	}
	return nil
}

func (r *LunchRepository) SetItemQuantity(ctx context.Context, tx db.DBTX, itemID uuid.UUID, quantity int) error {
	tag, err := tx.Exec(ctx, setLunchItemQuantitySQL, itemID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to set lunch item quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lunch item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LunchRepository) DeleteItem(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error {
	_, err := tx.Exec(ctx, deleteLunchItemSQL, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lunch item", err)
	}
	return nil
}
