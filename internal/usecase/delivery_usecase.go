package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeliveryUsecase sends persisted notification jobs over their channels.
type DeliveryUsecase interface {
	// Deliver performs one delivery round for the job. It returns ErrTransportFailed
	// when a channel is still failing and the job may be retried later.
	Deliver(ctx context.Context, jobID uuid.UUID) error
}
