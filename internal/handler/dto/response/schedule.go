package response

import (
	"time"

	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleResponse struct {
	ID                    uuid.UUID               `json:"id"`
	LunchID               uuid.UUID               `json:"lunchId"`
	Name                  string                  `json:"name"`
	Frequency             string                  `json:"frequency"`
	DaysOfWeek            []string                `json:"daysOfWeek,omitempty"`
	TimesInDay            []string                `json:"timesInDay"`
	StartDate             time.Time               `json:"startDate"`
	EndDate               time.Time               `json:"endDate"`
	DeliveryFeeTotalCents int64                   `json:"deliveryFeeTotalCents"`
	Truncated             bool                    `json:"truncated"`
	Status                string                  `json:"status"`
	InstanceCount         int                     `json:"instanceCount"`
	Instances             []OrderInstanceResponse `json:"instances"`
	CreatedAt             time.Time               `json:"createdAt"`
	UpdatedAt             time.Time               `json:"updatedAt"`
}

type OrderInstanceResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	DeliveryDate     time.Time           `json:"deliveryDate"`
	SubtotalCents    int64               `json:"subtotalCents"`
	DeliveryFeeCents int64               `json:"deliveryFeeCents"`
	TotalCents       int64               `json:"totalCents"`
	Status           string              `json:"status"`
	Items            []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type ScheduleListResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Frequency     string    `json:"frequency"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	InstanceCount int       `json:"instanceCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromScheduleView(view *queries.ScheduleView) *ScheduleResponse {
	instances := make([]OrderInstanceResponse, len(view.Instances))
	for i, inst := range view.Instances {
		items := make([]OrderItemResponse, len(inst.Items))
		for j, item := range inst.Items {
			items[j] = OrderItemResponse{
				ProductID:      item.ProductID,
				ProductName:    item.ProductName,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
			}
		}
		instances[i] = OrderInstanceResponse{
			ID:               inst.ID,
			Name:             inst.Name,
			DeliveryDate:     inst.DeliveryDate,
			SubtotalCents:    inst.SubtotalCents,
			DeliveryFeeCents: inst.DeliveryFeeCents,
			TotalCents:       inst.TotalCents,
			Status:           inst.Status,
			Items:            items,
		}
	}

	return &ScheduleResponse{
		ID:                    view.ID,
		LunchID:               view.LunchID,
		Name:                  view.Name,
		Frequency:             view.Frequency,
		DaysOfWeek:            view.DaysOfWeek,
		TimesInDay:            view.TimesInDay,
		StartDate:             view.StartDate,
		EndDate:               view.EndDate,
		DeliveryFeeTotalCents: view.DeliveryFeeTotalCents,
		Truncated:             view.Truncated,
		Status:                view.Status,
		InstanceCount:         len(view.Instances),
		Instances:             instances,
		CreatedAt:             view.CreatedAt,
		UpdatedAt:             view.UpdatedAt,
	}
}

func FromScheduleListItem(item *queries.ScheduleListItem) *ScheduleListResponse {
	return &ScheduleListResponse{
		ID:            item.ID,
		Name:          item.Name,
		Frequency:     item.Frequency,
		StartDate:     item.StartDate,
		EndDate:       item.EndDate,
		Status:        item.Status,
		InstanceCount: item.InstanceCount,
		CreatedAt:     item.CreatedAt,
	}
}
