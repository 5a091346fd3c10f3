package repository

import (
	"context"
	"time"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

// A conflicting row that has already expired is reclaimed in place, so a
// retried key behaves like a fresh claim once its TTL has passed.
const tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint           = EXCLUDED.endpoint,
    request_hash       = EXCLUDED.request_hash,
    status             = 'processing',
    response_body_hash = NULL,
    result_schedule_id = NULL,
    expires_at         = EXCLUDED.expires_at,
    created_at         = now()
WHERE idempotency_keys.expires_at < now()
`

const updateIdempotencyKeyCompletedSQL = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_schedule_id = $4
WHERE key = $1 AND user_id = $2
`

const deleteExpiredIdempotencyKeysSQL = `
DELETE FROM idempotency_keys WHERE expires_at < now()
`

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, tryInsertIdempotencyKeySQL, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	// One row affected for a fresh insert and for an expired-row reclaim;
	// zero when a live claim already holds the key.
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, responseBodyHash string, resultScheduleID uuid.UUID) error {
	_, err := tx.Exec(ctx, updateIdempotencyKeyCompletedSQL, key, userID, responseBodyHash, resultScheduleID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx db.DBTX) (int64, error) {
	tag, err := tx.Exec(ctx, deleteExpiredIdempotencyKeysSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
