package service

import (
	"context"

	"lostfound/internal/domain/entity"
)

// JobDispatcher hands persisted notification jobs to asynchronous delivery.
// Enqueue never blocks the caller; a job that cannot be handed off stays pending.
type JobDispatcher interface {
	Enqueue(ctx context.Context, jobs ...*entity.NotificationJob)
}
