package readstore

import (
	"context"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/pkg/pgconv"
	"lunchbox/internal/usecase/queries"

	"github.com/google/uuid"
)

const getScheduleByIDSQL = `
SELECT id, lunch_id, user_id, name, frequency, days_of_week, times_in_day,
       start_date, end_date, delivery_fee_total_cents, truncated, status,
       created_at, updated_at
FROM schedules
WHERE id = $1
`

const getInstancesByScheduleIDSQL = `
SELECT id, name, delivery_date, subtotal_cents, delivery_fee_cents, total_cents, status
FROM order_instances
WHERE schedule_id = $1
ORDER BY delivery_date ASC
`

const getItemsByInstanceIDSQL = `
SELECT product_id, product_name, quantity, unit_price_cents
FROM order_instance_items
WHERE order_instance_id = $1
ORDER BY product_name ASC
`

const listSchedulesByUserIDSQL = `
SELECT s.id, s.name, s.frequency, s.start_date, s.end_date, s.status,
       s.created_at, COUNT(oi.id) AS instance_count
FROM schedules s
LEFT JOIN order_instances oi ON oi.schedule_id = s.id
WHERE s.user_id = $1
GROUP BY s.id
ORDER BY s.created_at DESC, s.id DESC
`

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

func (r *ScheduleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ScheduleView, error) {
	view := &queries.ScheduleView{}
	err := r.db.QueryRow(ctx, getScheduleByIDSQL, id).Scan(
		&view.ID,
		&view.LunchID,
		&view.UserID,
		&view.Name,
		&view.Frequency,
		&view.DaysOfWeek,
		&view.TimesInDay,
		&view.StartDate,
		&view.EndDate,
		&view.DeliveryFeeTotalCents,
		&view.Truncated,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule by ID", err)
	}

	instances, err := r.loadInstances(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Instances = instances

	return view, nil
}

func (r *ScheduleReadStore) loadInstances(ctx context.Context, scheduleID uuid.UUID) ([]queries.OrderInstanceView, error) {
	rows, err := r.db.Query(ctx, getInstancesByScheduleIDSQL, scheduleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order instances", err)
	}
	defer rows.Close()

	var instances []queries.OrderInstanceView
	for rows.Next() {
		var inst queries.OrderInstanceView
		if err := rows.Scan(
			&inst.ID,
			&inst.Name,
			&inst.DeliveryDate,
			&inst.SubtotalCents,
			&inst.DeliveryFeeCents,
			&inst.TotalCents,
			&inst.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order instance", err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order instances", err)
	}

	for i := range instances {
		items, err := r.loadInstanceItems(ctx, instances[i].ID)
		if err != nil {
			return nil, err
		}
		instances[i].Items = items
	}

	return instances, nil
}

func (r *ScheduleReadStore) loadInstanceItems(ctx context.Context, instanceID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx, getItemsByInstanceIDSQL, instanceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order instance items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order instance item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order instance items", err)
	}

	return items, nil
}

func (r *ScheduleReadStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ScheduleListItem, error) {
	rows, err := r.db.Query(ctx, listSchedulesByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}
	defer rows.Close()

	var result []*queries.ScheduleListItem
	for rows.Next() {
		item := &queries.ScheduleListItem{}
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Frequency,
			&item.StartDate,
			&item.EndDate,
			&item.Status,
			&item.CreatedAt,
			&item.InstanceCount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule list item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedules", err)
	}

	return result, nil
}
