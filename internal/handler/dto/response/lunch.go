package response

import (
	"log/slog"
	"time"

	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LunchResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Status    string              `json:"status"`
	Items     []LunchItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type LunchItemResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type LunchListResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromLunchView(view *queries.LunchView) *LunchResponse {
	resp := &LunchResponse{}
	if err := copier.Copy(resp, view); err != nil {
		slog.Error("failed to map lunch view", "error", err.Error())
	}
	return resp
}

func FromLunchListItem(item *queries.LunchListItem) *LunchListResponse {
	resp := &LunchListResponse{}
	if err := copier.Copy(resp, item); err != nil {
		slog.Error("failed to map lunch list item", "error", err.Error())
	}
	return resp
}
