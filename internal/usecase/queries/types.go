package queries

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleView struct {
	ID                    uuid.UUID
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
	Status                string
	Instances             []OrderInstanceView
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type OrderInstanceView struct {
	ID                uuid.UUID
	Name              string
	DeliveryDate      time.Time
	SubtotalCents     int64
	DeliveryFeeCents  int64
	TotalCents        int64
	Status            string
	Items             []OrderItemView
}

type OrderItemView struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type ScheduleListItem struct {
	ID            uuid.UUID
	Name          string
	Frequency     string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	InstanceCount int
	CreatedAt     time.Time
}

type LunchView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Status    string
	Items     []LunchItemView
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LunchItemView struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type LunchListItem struct {
	ID        uuid.UUID
	Name      string
	Status    string
	ItemCount int
	CreatedAt time.Time
}

type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}
