package commands

import (
	"context"

	"lunchbox/internal/domain/lunch"
	reqdto "lunchbox/internal/handler/dto/request"
	"lunchbox/internal/infra"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrInvalidLunchName = errs.New("invalid lunch name")
	ErrLunchItemInvalid = errs.New("invalid lunch item")
)

type CreateLunchResult struct {
	LunchID uuid.UUID
}

type LunchCommands interface {
	CreateLunch(ctx context.Context, req reqdto.CreateLunchRequest, userID uuid.UUID) (*CreateLunchResult, error)
	RenameLunch(ctx context.Context, lunchID, userID uuid.UUID, name string) error
	AddProduct(ctx context.Context, lunchID, userID, productID uuid.UUID) error
	SetItemQuantity(ctx context.Context, lunchID, itemID, userID uuid.UUID, quantity int) error
}

type lunchCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLunchCommands(uow shared.UnitOfWork) LunchCommands {
	return &lunchCommandsImpl{uow: uow}
}

func (l *lunchCommandsImpl) CreateLunch(ctx context.Context, req reqdto.CreateLunchRequest, userID uuid.UUID) (*CreateLunchResult, error) {
	entity, err := lunch.NewLunch(userID, req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLunchName)
	}

	if req.ProductID != nil {
		if _, err := l.uow.CommandReads().ProductByID(ctx, *req.ProductID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		entity.AddProduct(*req.ProductID)
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Lunches().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateLunchResult{LunchID: entity.ID()}, nil
}

func (l *lunchCommandsImpl) RenameLunch(ctx context.Context, lunchID, userID uuid.UUID, name string) error {
	entity, err := l.loadOwnedLunch(ctx, lunchID, userID)
	if err != nil {
		return err
	}

	if err := entity.Rename(name); err != nil {
		return errs.Mark(err, ErrInvalidLunchName)
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lunches().Rename(ctx, tx.DB(), entity.ID(), entity.Name())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (l *lunchCommandsImpl) AddProduct(ctx context.Context, lunchID, userID, productID uuid.UUID) error {
	entity, err := l.loadOwnedLunch(ctx, lunchID, userID)
	if err != nil {
		return err
	}

	if _, err := l.uow.CommandReads().ProductByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity.AddProduct(productID)

	// The touched line is the one holding this product after the mutation
	var touched lunch.Item
	for _, item := range entity.Items() {
		if item.ProductID == productID {
			touched = item
			break
		}
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lunches().UpsertItem(ctx, tx.DB(), entity.ID(), touched)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (l *lunchCommandsImpl) SetItemQuantity(ctx context.Context, lunchID, itemID, userID uuid.UUID, quantity int) error {
	entity, err := l.loadOwnedLunch(ctx, lunchID, userID)
	if err != nil {
		return err
	}

	if err := entity.SetItemQuantity(itemID, quantity); err != nil {
		return errs.Mark(err, ErrLunchItemInvalid)
	}

	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if quantity == 0 {
			return tx.Lunches().DeleteItem(ctx, tx.DB(), itemID)
		}
		return tx.Lunches().SetItemQuantity(ctx, tx.DB(), itemID, quantity)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (l *lunchCommandsImpl) loadOwnedLunch(ctx context.Context, lunchID, userID uuid.UUID) (*lunch.Lunch, error) {
	snap, err := l.uow.CommandReads().LunchByID(ctx, lunchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLunchNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return nil, ErrLunchNotFound
	}

	items := make([]lunch.Item, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, lunch.Item{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	status := lunch.Status(snap.Status)
	return lunch.ReconstructLunch(snap.ID, snap.UserID, snap.Name, status, items, snap.CreatedAt, snap.UpdatedAt), nil
}
