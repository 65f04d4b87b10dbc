// Package handler turns queued job events into delivery rounds.
package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// JobProcessor runs one delivery round per job event
type JobProcessor struct {
	deliverer usecase.DeliveryUsecase
	logger    *slog.Logger
}

// NewJobProcessor creates the processor shared by the push endpoint and the Kafka consumer
func NewJobProcessor(deliverer usecase.DeliveryUsecase, logger *slog.Logger) *JobProcessor {
	return &JobProcessor{deliverer: deliverer, logger: logger}
}

// Process delivers the job named by event. Transport failures and unexpected
// errors are retryable; malformed events and unknown jobs are not.
func (p *JobProcessor) Process(ctx context.Context, event *service.JobEvent, requestID string) error {
	reqLogger := p.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		return errors.Wrapf(err, "invalid job id %q", event.JobID)
	}

	reqLogger.Info("[Worker] Processing notification job",
		slog.String("job_id", event.JobID),
		slog.String("kind", event.Kind),
	)

	err = p.deliverer.Deliver(ctx, jobID)
	switch {
	case err == nil:
		reqLogger.Info("[Worker] Notification job processed", slog.String("job_id", event.JobID))

		return nil
	case errors.Is(err, domainerrors.ErrTransportFailed):
		return newRetryableError(err)
	case errors.Is(err, domainerrors.ErrJobNotFound):
		return err
	default:
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			return err
		}

		return newRetryableError(err)
	}
}
