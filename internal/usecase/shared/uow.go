package shared

import (
	"context"
	"time"

	"lunchbox/internal/domain/lunch"
	"lunchbox/internal/domain/schedule"
	"lunchbox/internal/domain/user"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lunches() LunchRepository
	Schedules() ScheduleRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	LunchByID(ctx context.Context, id uuid.UUID) (*LunchSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type LunchRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lunch.Lunch) (uuid.UUID, error)
	Rename(ctx context.Context, tx db.DBTX, id uuid.UUID, name string) error
	UpsertItem(ctx context.Context, tx db.DBTX, lunchID uuid.UUID, item lunch.Item) error
	SetItemQuantity(ctx context.Context, tx db.DBTX, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *schedule.Schedule) (uuid.UUID, error)
	CreateInstance(ctx context.Context, tx db.DBTX, inst *schedule.OrderInstance) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key with ON CONFLICT DO NOTHING semantics and
	// reports whether this call made the claim.
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, responseBodyHash string, resultScheduleID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx db.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
