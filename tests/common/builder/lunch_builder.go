//go:build unit || e2e

package builder

import (
	"time"

	domlunch "lunchbox/internal/domain/lunch"
	reqdto "lunchbox/internal/handler/dto/request"
	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

type LunchBuilder struct {
	UserID    uuid.UUID
	Name      string
	ProductID *uuid.UUID
	Items     []queries.LunchItemView
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewLunchBuilder() *LunchBuilder {
	now := time.Now()
	return &LunchBuilder{
		UserID: uuid.New(),
		Name:   "Weekday lunches",
		Items: []queries.LunchItemView{
			{
				ID:             uuid.New(),
				ProductID:      uuid.New(),
				ProductName:    "Jollof Rice",
				Quantity:       2,
				UnitPriceCents: 1500,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *LunchBuilder) With(mutate func(*LunchBuilder)) *LunchBuilder {
	mutate(l)
	return l
}

func (l *LunchBuilder) BuildDomain() (*domlunch.Lunch, error) {
	return domlunch.NewLunch(l.UserID, l.Name)
}

func (l *LunchBuilder) BuildCreateRequestDTO() reqdto.CreateLunchRequest {
	return reqdto.CreateLunchRequest{
		Name:      l.Name,
		ProductID: l.ProductID,
	}
}

func (l *LunchBuilder) BuildView() *queries.LunchView {
	return &queries.LunchView{
		ID:        uuid.New(),
		UserID:    l.UserID,
		Name:      l.Name,
		Status:    domlunch.StatusActive.String(),
		Items:     l.Items,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (l *LunchBuilder) BuildListItem() *queries.LunchListItem {
	return &queries.LunchListItem{
		ID:        uuid.New(),
		Name:      l.Name,
		Status:    domlunch.StatusActive.String(),
		ItemCount: len(l.Items),
		CreatedAt: l.CreatedAt,
	}
}
