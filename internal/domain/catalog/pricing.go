package catalog

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// StockLot is one intake of inventory for a product, priced at the time
// it was added.
type StockLot struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	Remaining      int
	UnitPriceCents int64
	AddedAt        time.Time
}

// Product is a catalog entry plus its stock lots. ListPriceCents is the
// fallback price when no stock information exists.
type Product struct {
	ID             uuid.UUID
	Name           string
	ListPriceCents int64
	Lots           []StockLot
}

// CurrentUnitPriceCents resolves the selling price FIFO-style: the
// oldest lot with remaining stock wins; if every lot is exhausted, the
// newest lot's price applies; with no lots at all, the list price.
func (p Product) CurrentUnitPriceCents() int64 {
	if len(p.Lots) == 0 {
		return p.ListPriceCents
	}

	lots := make([]StockLot, len(p.Lots))
	copy(lots, p.Lots)
	sort.Slice(lots, func(i, j int) bool {
		return lots[i].AddedAt.Before(lots[j].AddedAt)
	})

	for _, lot := range lots {
		if lot.Remaining > 0 {
			return lot.UnitPriceCents
		}
	}

	return lots[len(lots)-1].UnitPriceCents
}

// TotalStock is the remaining quantity summed across lots.
func (p Product) TotalStock() int {
	total := 0
	for _, lot := range p.Lots {
		total += lot.Remaining
	}
	return total
}
