package writerepo

import (
	"context"
	"time"

	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')
`

const saveDeviceTokenSQL = `
INSERT INTO device_tokens (user_id, token)
VALUES ($1, $2)
ON CONFLICT (user_id, token) DO UPDATE SET updated_at = now()
`

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, createNotificationJobSQL,
		kind,
		topic,
		payload,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) SaveDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	if _, err := r.db.Exec(ctx, saveDeviceTokenSQL, pgconv.UUIDToPgtype(userID), token); err != nil {
		return infra.WrapRepoErr("failed to save device token", err)
	}
	return nil
}
