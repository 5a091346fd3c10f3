package readstore

import (
	"context"

	"lunchbox/internal/domain/catalog"
	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const getProductByIDSQL = `
SELECT id, name, list_price_cents
FROM products
WHERE id = $1
`

const getLotsByProductIDSQL = `
SELECT id, product_id, remaining, unit_price_cents, added_at
FROM stock_lots
WHERE product_id = $1
ORDER BY added_at ASC
`

// ProductSource yields products with their stock lots. The plain read
// store hits Postgres; a caching wrapper can stand in on hot paths.
type ProductSource interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

// FindProductByID loads a product together with its stock lots so callers
// can resolve the current unit price from stock.
func (r *CatalogReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product := &catalog.Product{}
	err := r.db.QueryRow(ctx, getProductByIDSQL, id).Scan(&product.ID, &product.Name, &product.ListPriceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	lots, err := r.loadLots(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Lots = lots

	return product, nil
}

func (r *CatalogReadStore) loadLots(ctx context.Context, productID uuid.UUID) ([]catalog.StockLot, error) {
	rows, err := r.db.Query(ctx, getLotsByProductIDSQL, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load stock lots", err)
	}
	defer rows.Close()

	var lots []catalog.StockLot
	for rows.Next() {
		var lot catalog.StockLot
		if err := rows.Scan(&lot.ID, &lot.ProductID, &lot.Remaining, &lot.UnitPriceCents, &lot.AddedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock lot", err)
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stock lots", err)
	}

	return lots, nil
}
