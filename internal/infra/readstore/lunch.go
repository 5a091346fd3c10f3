package readstore

import (
	"context"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/pkg/pgconv"
	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

const getLunchByIDSQL = `
SELECT id, user_id, name, status, created_at, updated_at
FROM lunches
WHERE id = $1
`

const getLunchItemsSQL = `
SELECT li.id, li.product_id, p.name, li.quantity
FROM lunch_items li
JOIN products p ON p.id = li.product_id
WHERE li.lunch_id = $1
ORDER BY p.name ASC
`

const listLunchesByUserIDSQL = `
SELECT l.id, l.name, l.status, l.created_at, COUNT(li.id) AS item_count
FROM lunches l
LEFT JOIN lunch_items li ON li.lunch_id = l.id
WHERE l.user_id = $1
GROUP BY l.id
ORDER BY l.created_at DESC, l.id DESC
`

type LunchReadStore struct {
	db      db.DBTX
	catalog ProductSource
}

func NewLunchReadStore(db db.DBTX, catalog ProductSource) *LunchReadStore {
	return &LunchReadStore{db: db, catalog: catalog}
}

// FindByID loads a lunch with its items. Unit prices come from current
// stock, so two reads of the same lunch can price differently when stock
// has moved in between.
func (r *LunchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LunchView, error) {
	view := &queries.LunchView{}
	err := r.db.QueryRow(ctx, getLunchByIDSQL, id).Scan(
		&view.ID,
		&view.UserID,
		&view.Name,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lunch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lunch by ID", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return view, nil
}

func (r *LunchReadStore) loadItems(ctx context.Context, lunchID uuid.UUID) ([]queries.LunchItemView, error) {
	rows, err := r.db.Query(ctx, getLunchItemsSQL, lunchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load lunch items", err)
	}
	defer rows.Close()

	var items []queries.LunchItemView
	for rows.Next() {
		var item queries.LunchItemView
		if err := rows.Scan(&item.ID, &item.ProductID, &item.ProductName, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lunch item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lunch items", err)
	}

	for i := range items {
		product, err := r.catalog.FindProductByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		items[i].UnitPriceCents = product.CurrentUnitPriceCents()
	}

	return items, nil
}

func (r *LunchReadStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.LunchListItem, error) {
	rows, err := r.db.Query(ctx, listLunchesByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lunches", err)
	}
	defer rows.Close()

	var result []*queries.LunchListItem
	for rows.Next() {
		item := &queries.LunchListItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Status, &item.CreatedAt, &item.ItemCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lunch list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lunches", err)
	}

	return result, nil
}
