package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoDeliveryDates = errors.New("no delivery dates found for this schedule")
	ErrEmptyTemplate   = errors.New("lunch template has no items")
	ErrNegativeFee     = errors.New("delivery fee cannot be negative")
)

// LineItem is a template line frozen at scheduling time. Prices are
// snapshots; instances are never re-priced.
type LineItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   Money
}

func (li LineItem) Subtotal() Money {
	return li.UnitPrice.MultiplyBy(li.Quantity)
}

// OrderInstance is one concrete, date-stamped order generated from a
// lunch template for a single delivery occurrence.
type OrderInstance struct {
	id           uuid.UUID
	scheduleID   uuid.UUID
	userID       uuid.UUID
	name         string
	deliveryDate time.Time
	lineItems    []LineItem
	subtotal     Money
	deliveryFee  Money
	total        Money
	status       InstanceStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func (o *OrderInstance) ID() uuid.UUID           { return o.id }
func (o *OrderInstance) ScheduleID() uuid.UUID   { return o.scheduleID }
func (o *OrderInstance) UserID() uuid.UUID       { return o.userID }
func (o *OrderInstance) Name() string            { return o.name }
func (o *OrderInstance) DeliveryDate() time.Time { return o.deliveryDate }
func (o *OrderInstance) Subtotal() Money         { return o.subtotal }
func (o *OrderInstance) DeliveryFee() Money      { return o.deliveryFee }
func (o *OrderInstance) Total() Money            { return o.total }
func (o *OrderInstance) Status() InstanceStatus  { return o.status }
func (o *OrderInstance) CreatedAt() time.Time    { return o.createdAt }
func (o *OrderInstance) UpdatedAt() time.Time    { return o.updatedAt }

func (o *OrderInstance) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Schedule owns the recurrence rule and the order instances generated
// from it. All instances are materialized eagerly when the schedule is
// created; there is no background expansion.
type Schedule struct {
	id               uuid.UUID
	lunchID          uuid.UUID
	userID           uuid.UUID
	name             string
	recurrence       Recurrence
	deliveryFeeTotal Money
	truncated        bool
	status           Status
	instances        []*OrderInstance
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSchedule expands the recurrence and materializes one order instance
// per delivery date. The delivery fee budget is split evenly across
// instances; the subtotal is computed once from the template items and
// shared by every instance. An empty expansion fails with
// ErrNoDeliveryDates and nothing is built.
func NewSchedule(
	lunchID uuid.UUID,
	userID uuid.UUID,
	name string,
	recurrence Recurrence,
	items []LineItem,
	deliveryFeeTotal Money,
) (*Schedule, error) {
	if len(items) == 0 {
		return nil, ErrEmptyTemplate
	}
	if deliveryFeeTotal.IsNegative() {
		return nil, ErrNegativeFee
	}

	expansion := recurrence.Expand()
	if expansion.IsEmpty() {
		return nil, ErrNoDeliveryDates
	}

	subtotal := NewMoney(0)
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal())
	}

	s := &Schedule{
		id:               uuid.New(),
		lunchID:          lunchID,
		userID:           userID,
		name:             name,
		recurrence:       recurrence,
		deliveryFeeTotal: deliveryFeeTotal,
		truncated:        expansion.Truncated,
		status:           StatusActive,
	}

	fees := deliveryFeeTotal.SplitEvenly(len(expansion.Dates))
	for i, date := range expansion.Dates {
		lineItems := make([]LineItem, len(items))
		copy(lineItems, items)

		s.instances = append(s.instances, &OrderInstance{
			id:           uuid.New(),
			scheduleID:   s.id,
			userID:       userID,
			name:         fmt.Sprintf("%s - %s", name, date.Format("Jan 2, 2006 15:04")),
			deliveryDate: date,
			lineItems:    lineItems,
			subtotal:     subtotal,
			deliveryFee:  fees[i],
			total:        subtotal.Add(fees[i]),
			status:       InstanceAwaitingPayment,
		})
	}

	return s, nil
}

func ReconstructSchedule(
	id, lunchID, userID uuid.UUID,
	name string,
	recurrence Recurrence,
	deliveryFeeTotal Money,
	truncated bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Schedule {
	return &Schedule{
		id:               id,
		lunchID:          lunchID,
		userID:           userID,
		name:             name,
		recurrence:       recurrence,
		deliveryFeeTotal: deliveryFeeTotal,
		truncated:        truncated,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Schedule) ID() uuid.UUID           { return s.id }
func (s *Schedule) LunchID() uuid.UUID      { return s.lunchID }
func (s *Schedule) UserID() uuid.UUID       { return s.userID }
func (s *Schedule) Name() string            { return s.name }
func (s *Schedule) Recurrence() Recurrence  { return s.recurrence }
func (s *Schedule) DeliveryFeeTotal() Money { return s.deliveryFeeTotal }
func (s *Schedule) Truncated() bool         { return s.truncated }
func (s *Schedule) Status() Status          { return s.status }
func (s *Schedule) CreatedAt() time.Time    { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time    { return s.updatedAt }

func (s *Schedule) Instances() []*OrderInstance {
	instances := make([]*OrderInstance, len(s.instances))
	copy(instances, s.instances)
	return instances
}

func (s *Schedule) InstanceCount() int {
	return len(s.instances)
}

func (s *Schedule) IsActive() bool {
	return s.status == StatusActive
}
