package shared

import (
	"time"

	"github.com/google/uuid"
)

// LunchSnapshot carries the state commands need to validate and price a
// lunch template. Unit prices are resolved from stock at read time, so a
// snapshot taken inside a transaction is the canonical pricing input.
type LunchSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Status    string
	Items     []LunchItemSnapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LunchItemSnapshot struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type ProductSnapshot struct {
	ID             uuid.UUID
	Name           string
	ListPriceCents int64
	UnitPriceCents int64
	TotalStock     int
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	Status           string
	ResponseBodyHash *string
	ResultScheduleID *uuid.UUID
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// Expired reports whether the record's claim window has passed.
func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
