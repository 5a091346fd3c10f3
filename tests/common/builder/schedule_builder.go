//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lunchbox/internal/handler/dto/request"
	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	LunchID               uuid.UUID
	UserID                uuid.UUID
	Name                  string
	Frequency             string
	DaysOfWeek            []string
	TimesInDay            []string
	StartDate             time.Time
	EndDate               time.Time
	DeliveryFeeTotalCents int64
	Truncated             bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewScheduleBuilder() *ScheduleBuilder {
	now := time.Now()
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &ScheduleBuilder{
		LunchID:               uuid.New(),
		UserID:                uuid.New(),
		Name:                  "Office lunches",
		Frequency:             "weekly",
		DaysOfWeek:            []string{"monday", "wednesday", "friday"},
		TimesInDay:            []string{"12:00"},
		StartDate:             start,
		EndDate:               start.AddDate(0, 1, 0),
		DeliveryFeeTotalCents: 2000,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

func (s *ScheduleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRequest {
	return reqdto.CreateScheduleRequest{
		LunchID:               s.LunchID,
		Name:                  s.Name,
		Frequency:             s.Frequency,
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		DaysOfWeek:            s.DaysOfWeek,
		TimesInDay:            s.TimesInDay,
		DeliveryFeeTotalCents: s.DeliveryFeeTotalCents,
	}
}

func (s *ScheduleBuilder) BuildView() *queries.ScheduleView {
	instanceDate := s.StartDate.AddDate(0, 0, 1)
	return &queries.ScheduleView{
		ID:                    uuid.New(),
		LunchID:               s.LunchID,
		UserID:                s.UserID,
		Name:                  s.Name,
		Frequency:             s.Frequency,
		DaysOfWeek:            s.DaysOfWeek,
		TimesInDay:            s.TimesInDay,
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		DeliveryFeeTotalCents: s.DeliveryFeeTotalCents,
		Truncated:             s.Truncated,
		Status:                "active",
		Instances: []queries.OrderInstanceView{
			{
				ID:               uuid.New(),
				Name:             s.Name + " - " + instanceDate.Format("Jan 2, 2006 15:04"),
				DeliveryDate:     instanceDate,
				SubtotalCents:    3000,
				DeliveryFeeCents: 500,
				TotalCents:       3500,
				Status:           "awaiting_payment",
				Items: []queries.OrderItemView{
					{
						ProductID:      uuid.New(),
						ProductName:    "Jollof Rice",
						Quantity:       2,
						UnitPriceCents: 1500,
					},
				},
			},
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (s *ScheduleBuilder) BuildListItem() *queries.ScheduleListItem {
	return &queries.ScheduleListItem{
		ID:            uuid.New(),
		Name:          s.Name,
		Frequency:     s.Frequency,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		Status:        "active",
		InstanceCount: 12,
		CreatedAt:     s.CreatedAt,
	}
}
