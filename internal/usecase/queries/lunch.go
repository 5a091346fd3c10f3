package queries

import (
	"context"

	"lunchbox/internal/infra"
	"lunchbox/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLunchNotFound = errs.New("lunch not found")

type LunchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LunchView, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*LunchListItem, error)
}

type LunchQueries interface {
	GetByID(ctx context.Context, actorID, lunchID uuid.UUID) (*LunchView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*LunchListItem, error)
}

type lunchQueriesImpl struct {
	readStore LunchReadStore
}

func NewLunchQueries(readStore LunchReadStore) LunchQueries {
	return &lunchQueriesImpl{readStore: readStore}
}

func (q *lunchQueriesImpl) GetByID(ctx context.Context, actorID, lunchID uuid.UUID) (*LunchView, error) {
	view, err := q.readStore.FindByID(ctx, lunchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLunchNotFound)
		}
		return nil, errs.Wrap(err, "failed to get lunch")
	}
	if view.UserID != actorID {
		return nil, errs.Mark(errs.New("lunch owned by another user"), ErrLunchNotFound)
	}
	return view, nil
}

func (q *lunchQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*LunchListItem, error) {
	items, err := q.readStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list lunches")
	}
	return items, nil
}
