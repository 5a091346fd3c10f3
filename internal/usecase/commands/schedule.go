package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"lunchbox/internal/domain/schedule"
	reqdto "lunchbox/internal/handler/dto/request"
	"lunchbox/internal/infra"
	"lunchbox/internal/pkg/clock"
	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/usecase/queries"
	"lunchbox/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLunchNotFound           = errs.New("lunch not found")
	ErrEmptyLunch              = errs.New("lunch has no items")
	ErrNoDeliveryDates         = errs.New("no delivery dates found for this schedule")
	ErrInvalidRecurrence       = errs.New("invalid recurrence")
	ErrInvalidFee              = errs.New("invalid delivery fee")
	ErrDuplicateSchedule       = errs.New("duplicate schedule request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const idempotencyTTL = 24 * time.Hour

type CreateScheduleResult struct {
	Schedule   *queries.ScheduleView
	IsReplayed bool
}

type ScheduleCommands interface {
	CreateSchedule(ctx context.Context, req reqdto.CreateScheduleRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateScheduleResult, error)
}

type scheduleCommandsImpl struct {
	uow             shared.UnitOfWork
	scheduleQueries queries.ScheduleQueries
	clock           clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, scheduleQueries queries.ScheduleQueries, clock clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:             uow,
		scheduleQueries: scheduleQueries,
		clock:           clock,
	}
}

// CreateSchedule expands the recurrence into concrete delivery dates and
// persists the schedule with every order instance in one transaction.
// A replayed idempotency key returns the previously created schedule
// without touching the database again.
func (s *scheduleCommandsImpl) CreateSchedule(
	ctx context.Context,
	req reqdto.CreateScheduleRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateScheduleResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := s.clock.Now().Add(idempotencyTTL)

	existing, err := s.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateScheduleResult{Schedule: existing, IsReplayed: true}, nil
	}

	view, err := s.createNewSchedule(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateScheduleResult{Schedule: view, IsReplayed: false}, nil
}

func (s *scheduleCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ScheduleView, error) {
	var claimed bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reap expired keys opportunistically; TryInsert also reclaims an
		// expired row for this key in place, so the reap is best effort.
		if _, reapErr := tx.Idempotency().DeleteExpired(ctx, tx.DB()); reapErr != nil {
			return reapErr
		}
		var insertErr error
		claimed, insertErr = tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, "POST /schedules", requestHash, expiresAt)
		return insertErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	record, err := s.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch record.Status {
	case shared.IdempotencyStatusCompleted:
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateSchedule
		}
		if record.ResultScheduleID != nil {
			// System-level read: the actor was checked on first execution
			return s.scheduleQueries.GetByIDSystem(ctx, *record.ResultScheduleID)
		}
		return nil, errs.New("completed request missing result schedule ID")

	case shared.IdempotencyStatusProcessing:
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateSchedule
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (s *scheduleCommandsImpl) createNewSchedule(
	ctx context.Context,
	req reqdto.CreateScheduleRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.ScheduleView, error) {
	lunchSnap, err := s.loadLunch(ctx, req.LunchID, userID)
	if err != nil {
		return nil, err
	}
	if len(lunchSnap.Items) == 0 {
		return nil, ErrEmptyLunch
	}

	recurrence, feeTotal, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}

	items := make([]schedule.LineItem, 0, len(lunchSnap.Items))
	for _, item := range lunchSnap.Items {
		items = append(items, schedule.LineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   schedule.NewMoney(item.UnitPriceCents),
		})
	}

	scheduleEntity, err := schedule.NewSchedule(lunchSnap.ID, userID, req.Name, recurrence, items, feeTotal)
	if err != nil {
		switch {
		case errs.Is(err, schedule.ErrNoDeliveryDates):
			return nil, errs.Mark(err, ErrNoDeliveryDates)
		case errs.Is(err, schedule.ErrNegativeFee):
			return nil, errs.Mark(err, ErrInvalidFee)
		default:
			return nil, errs.Mark(err, ErrInvalidRecurrence)
		}
	}

	return s.executeScheduleTransaction(ctx, scheduleEntity, idempotencyKey, userID)
}

func (s *scheduleCommandsImpl) loadLunch(ctx context.Context, lunchID, userID uuid.UUID) (*shared.LunchSnapshot, error) {
	snap, err := s.uow.CommandReads().LunchByID(ctx, lunchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLunchNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Foreign lunches look absent rather than forbidden
	if snap.UserID != userID {
		return nil, ErrLunchNotFound
	}
	return snap, nil
}

func (s *scheduleCommandsImpl) executeScheduleTransaction(
	ctx context.Context,
	scheduleEntity *schedule.Schedule,
	idempotencyKey, userID uuid.UUID,
) (*queries.ScheduleView, error) {
	var scheduleID uuid.UUID

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Schedules().Create(ctx, tx.DB(), scheduleEntity)
		if err != nil {
			return err
		}

		for _, inst := range scheduleEntity.Instances() {
			if _, err := tx.Schedules().CreateInstance(ctx, tx.DB(), inst); err != nil {
				return err
			}
		}

		if err := s.createNotificationJob(ctx, tx, scheduleEntity); err != nil {
			return err
		}

		resultHash := calculateIDHash(id)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, resultHash, id); err != nil {
			return err
		}

		scheduleID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: the complete view comes from the read store
	view, err := s.scheduleQueries.GetByIDSystem(ctx, scheduleID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (s *scheduleCommandsImpl) createNotificationJob(ctx context.Context, tx shared.Tx, scheduleEntity *schedule.Schedule) error {
	payload, err := json.Marshal(map[string]any{
		"schedule_id":    scheduleEntity.ID(),
		"instance_count": scheduleEntity.InstanceCount(),
		"truncated":      scheduleEntity.Truncated(),
		"type":           "schedule_created",
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "schedule_created", payload, s.clock.Now())
}

func calculateRequestHash(req reqdto.CreateScheduleRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
