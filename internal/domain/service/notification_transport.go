// Package service defines interfaces for infrastructure capabilities the use cases depend on.
package service

import (
	"context"

	"lostfound/internal/domain/entity"
)

// NotificationTransport delivers a job over a single channel
type NotificationTransport interface {
	// Channel returns the medium this transport serves
	Channel() entity.Channel

	// Send delivers the job once. Retrying is the caller's concern.
	Send(ctx context.Context, job *entity.NotificationJob) error
}

// DeliveryGuard ensures a job is delivered by one worker at a time
type DeliveryGuard interface {
	// Acquire returns false when another worker currently holds the job
	Acquire(ctx context.Context, jobID string) (bool, error)

	// Release frees the job for later redelivery
	Release(ctx context.Context, jobID string) error
}
