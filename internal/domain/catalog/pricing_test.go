//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"lunchbox/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func lot(remaining int, priceCents int64, addedAt time.Time) catalog.StockLot {
	return catalog.StockLot{
		ID:             uuid.New(),
		Remaining:      remaining,
		UnitPriceCents: priceCents,
		AddedAt:        addedAt,
	}
}

func TestCurrentUnitPriceCents(t *testing.T) {
	base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("oldest lot with remaining stock wins", func(t *testing.T) {
		p := catalog.Product{
			Name:           "Egusi Soup",
			ListPriceCents: 2000,
			Lots: []catalog.StockLot{
				lot(3, 1800, base),
				lot(10, 2200, base.AddDate(0, 0, 7)),
			},
		}
		assert.Equal(t, int64(1800), p.CurrentUnitPriceCents())
	})

	t.Run("lot order in the slice does not matter", func(t *testing.T) {
		p := catalog.Product{
			ListPriceCents: 2000,
			Lots: []catalog.StockLot{
				lot(10, 2200, base.AddDate(0, 0, 7)),
				lot(3, 1800, base),
			},
		}
		assert.Equal(t, int64(1800), p.CurrentUnitPriceCents())
	})

	t.Run("exhausted oldest lot falls through to the next live one", func(t *testing.T) {
		p := catalog.Product{
			ListPriceCents: 2000,
			Lots: []catalog.StockLot{
				lot(0, 1800, base),
				lot(5, 2100, base.AddDate(0, 0, 3)),
				lot(8, 2400, base.AddDate(0, 0, 9)),
			},
		}
		assert.Equal(t, int64(2100), p.CurrentUnitPriceCents())
	})

	t.Run("all lots exhausted uses the newest lot price", func(t *testing.T) {
		p := catalog.Product{
			ListPriceCents: 2000,
			Lots: []catalog.StockLot{
				lot(0, 1800, base),
				lot(0, 2500, base.AddDate(0, 0, 14)),
			},
		}
		assert.Equal(t, int64(2500), p.CurrentUnitPriceCents())
	})

	t.Run("no lots falls back to the list price", func(t *testing.T) {
		p := catalog.Product{ListPriceCents: 2000}
		assert.Equal(t, int64(2000), p.CurrentUnitPriceCents())
	})
}

func TestTotalStock(t *testing.T) {
	base := time.Now()

	p := catalog.Product{
		Lots: []catalog.StockLot{
			lot(3, 1000, base),
			lot(0, 1100, base),
			lot(7, 1200, base),
		},
	}
	assert.Equal(t, 10, p.TotalStock())

	assert.Zero(t, catalog.Product{}.TotalStock())
}
