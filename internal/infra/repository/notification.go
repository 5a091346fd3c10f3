package repository

import (
	"context"
	"time"

	"lunchbox/internal/infra"
	"lunchbox/internal/infra/db"

	"github.com/google/uuid"
)

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, 'queued', $5)
`

const updateNotificationJobStatusSQL = `
UPDATE notification_jobs SET status = $2, last_error = $3 WHERE id = $1
`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, insertNotificationJobSQL, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	_, err := tx.Exec(ctx, updateNotificationJobStatusSQL, jobID, status, lastError)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
