package repository

import (
	"context"
	"errors"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when a notification job is not found.
var ErrJobNotFound = errors.New("notification job not found")

// NotificationRepository defines the interface for notification job persistence.
type NotificationRepository interface {
	// CreateJobs persists notification jobs in a batch.
	CreateJobs(ctx context.Context, jobs []*entity.NotificationJob) error

	// FindJob retrieves a job by its ID.
	FindJob(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error)

	// UpdateJob stores the delivery state of a job (status, attempts, channels, last error).
	UpdateJob(ctx context.Context, job *entity.NotificationJob) error

	// ListPending returns pending jobs, oldest first, up to limit.
	ListPending(ctx context.Context, limit int) ([]*entity.NotificationJob, error)
}
