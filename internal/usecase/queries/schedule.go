package queries

import (
	"context"

	"lunchbox/internal/infra"
	"lunchbox/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrScheduleNotFound = errs.New("schedule not found")

type ScheduleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ScheduleView, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*ScheduleListItem, error)
}

type ScheduleQueries interface {
	GetByID(ctx context.Context, actorID, scheduleID uuid.UUID) (*ScheduleView, error)
	// GetByIDSystem skips the ownership check. Used for idempotent replay,
	// where the actor was already verified when the schedule was created.
	GetByIDSystem(ctx context.Context, scheduleID uuid.UUID) (*ScheduleView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ScheduleListItem, error)
}

type scheduleQueriesImpl struct {
	readStore ScheduleReadStore
}

func NewScheduleQueries(readStore ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{readStore: readStore}
}

func (q *scheduleQueriesImpl) GetByID(ctx context.Context, actorID, scheduleID uuid.UUID) (*ScheduleView, error) {
	view, err := q.readStore.FindByID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrScheduleNotFound)
		}
		return nil, errs.Wrap(err, "failed to get schedule")
	}
	// Hide other users' schedules rather than revealing they exist.
	if view.UserID != actorID {
		return nil, errs.Mark(errs.New("schedule owned by another user"), ErrScheduleNotFound)
	}
	return view, nil
}

func (q *scheduleQueriesImpl) GetByIDSystem(ctx context.Context, scheduleID uuid.UUID) (*ScheduleView, error) {
	view, err := q.readStore.FindByID(ctx, scheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrScheduleNotFound)
		}
		return nil, errs.Wrap(err, "failed to get schedule")
	}
	return view, nil
}

func (q *scheduleQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ScheduleListItem, error) {
	items, err := q.readStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list schedules")
	}
	return items, nil
}
