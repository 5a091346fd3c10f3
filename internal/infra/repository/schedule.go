package repository

import (
	"context"

	"lunchbox/internal/domain/schedule"
	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

const insertScheduleSQL = `
INSERT INTO schedules (
	id, lunch_id, user_id, name, frequency, days_of_week, times_in_day,
	start_date, end_date, delivery_fee_total_cents, truncated, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

const insertOrderInstanceSQL = `
INSERT INTO order_instances (
	id, schedule_id, user_id, name, delivery_date,
	subtotal_cents, delivery_fee_cents, total_cents, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const insertOrderInstanceItemSQL = `
INSERT INTO order_instance_items (
	id, order_instance_id, product_id, product_name, quantity, unit_price_cents
) VALUES ($1, $2, $3, $4, $5, $6)
`

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) (uuid.UUID, error) {
	rec := s.Recurrence()

	times := make([]string, 0, len(rec.TimesInDay()))
	for _, t := range rec.TimesInDay() {
		times = append(times, t.String())
	}

	_, err := tx.Exec(ctx, insertScheduleSQL,
		s.ID(),
		s.LunchID(),
		s.UserID(),
		s.Name(),
		string(rec.Frequency()),
		rec.DaysOfWeek().Names(),
		times,
		rec.Start(),
		rec.End(),
		s.DeliveryFeeTotal().Cents(),
		s.Truncated(),
		string(s.Status()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule", err)
	}

	return s.ID(), nil
}

func (r *ScheduleRepository) CreateInstance(ctx context.Context, tx db.DBTX, inst *schedule.OrderInstance) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertOrderInstanceSQL,
		inst.ID(),
		inst.ScheduleID(),
		inst.UserID(),
		inst.Name(),
		inst.DeliveryDate(),
		inst.Subtotal().Cents(),
		inst.DeliveryFee().Cents(),
		inst.Total().Cents(),
		string(inst.Status()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order instance", err)
	}

	for _, item := range inst.LineItems() {
		_, err := tx.Exec(ctx, insertOrderInstanceItemSQL,
			uuid.New(),
			inst.ID(),
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice.Cents(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order instance item", err)
		}
	}

	return inst.ID(), nil
}
