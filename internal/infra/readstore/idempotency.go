package readstore

import (
	"context"
	"time"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"
	"lunchbox/internal/pkg/pgconv"
	"lunchbox/internal/usecase/shared"

	"github.com/google/uuid"
)

const getIdempotencyKeySQL = `
SELECT key, user_id, endpoint, request_hash, status, response_body_hash,
       result_schedule_id, expires_at, created_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

type IdempotencyReadStore struct{}

func NewIdempotencyReadStore() *IdempotencyReadStore {
	return &IdempotencyReadStore{}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	record := &shared.IdempotencyRecord{}
	err := tx.QueryRow(ctx, getIdempotencyKeySQL, key, userID).Scan(
		&record.Key,
		&record.UserID,
		&record.Endpoint,
		&record.RequestHash,
		&record.Status,
		&record.ResponseBodyHash,
		&record.ResultScheduleID,
		&record.ExpiresAt,
		&record.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	// Expired claims behave as absent so the request can run fresh.
	if record.Expired(time.Now()) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
