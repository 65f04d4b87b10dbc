package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wb-go/wbf/retry"
	"go.uber.org/fx"
)

const defaultMaxAttempts = 5

type deliveryService struct {
	notifRepo   repository.NotificationRepository
	transports  map[entity.Channel]service.NotificationTransport
	guard       service.DeliveryGuard
	strategy    retry.Strategy
	maxAttempts int
	logger      *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	NotifRepo  repository.NotificationRepository
	Transports []service.NotificationTransport `group:"transports"`
	Guard      service.DeliveryGuard
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeliveryService creates the notification delivery use case.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	transports := make(map[entity.Channel]service.NotificationTransport, len(params.Transports))
	for _, transport := range params.Transports {
		transports[transport.Channel()] = transport
	}

	strategy := retry.Strategy{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}
	maxAttempts := defaultMaxAttempts
	if params.Config != nil && params.Config.Dispatch != nil {
		if params.Config.Dispatch.Retry.Attempts > 0 {
			strategy = params.Config.Dispatch.Retry.Strategy()
		}
		if params.Config.Dispatch.MaxAttempts > 0 {
			maxAttempts = params.Config.Dispatch.MaxAttempts
		}
	}

	return &deliveryService{
		notifRepo:   params.NotifRepo,
		transports:  transports,
		guard:       params.Guard,
		strategy:    strategy,
		maxAttempts: maxAttempts,
		logger:      params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver sends every pending channel of the job once, each with bounded retries.
// The job is loaded only after the delivery guard is held, so a redelivery that
// waited on another worker sees that worker's outcome instead of a stale copy.
func (srv *deliveryService) Deliver(ctx context.Context, jobID uuid.UUID) error {
	acquired, err := srv.guard.Acquire(ctx, jobID.String())
	if err != nil {
		return domainerrors.ErrTransportFailed.WithDetails("delivery guard unavailable: " + err.Error())
	}
	if !acquired {
		srv.log(ctx).Debug("Job is being delivered elsewhere", slog.String("jobId", jobID.String()))

		return nil
	}
	defer func() {
		if err := srv.guard.Release(context.WithoutCancel(ctx), jobID.String()); err != nil {
			srv.log(ctx).Warn("Failed to release delivery guard", slog.String("jobId", jobID.String()), slog.Any("error", err))
		}
	}()

	job, err := srv.notifRepo.FindJob(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domainerrors.ErrJobNotFound.WithDetails(jobID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to load notification job")
	}

	if job.Status != entity.JobStatusPending {
		srv.log(ctx).Debug("Skipping completed job", slog.String("jobId", jobID.String()), slog.String("status", string(job.Status)))

		return nil
	}

	job.Attempts++

	var failures []string
	for _, channel := range job.PendingChannels() {
		if err := srv.sendWithRetry(ctx, channel, job); err != nil {
			failures = append(failures, string(channel)+": "+err.Error())

			continue
		}
		job.MarkDelivered(channel)
	}

	retryable := false
	switch {
	case len(failures) == 0:
		job.Status = entity.JobStatusSent
		job.LastError = ""
	case job.Attempts >= srv.maxAttempts:
		job.Status = entity.JobStatusFailed
		job.LastError = strings.Join(failures, "; ")
	default:
		job.LastError = strings.Join(failures, "; ")
		retryable = true
	}

	if err := srv.notifRepo.UpdateJob(context.WithoutCancel(ctx), job); err != nil {
		return errors.Wrap(err, "failed to store delivery state")
	}

	logger := srv.log(ctx).With(
		slog.String("jobId", jobID.String()),
		slog.String("kind", string(job.Kind)),
		slog.Int("attempts", job.Attempts),
	)
	switch job.Status {
	case entity.JobStatusSent:
		logger.Info("Notification delivered")
	case entity.JobStatusFailed:
		logger.Error("Notification delivery exhausted", slog.String("lastError", job.LastError))
	default:
		logger.Warn("Notification delivery failed, will retry", slog.String("lastError", job.LastError))
	}

	if retryable {
		return domainerrors.ErrTransportFailed.WithDetails(job.LastError)
	}

	return nil
}

// sendWithRetry calls the channel's transport up to strategy.Attempts times with backoff.
func (srv *deliveryService) sendWithRetry(ctx context.Context, channel entity.Channel, job *entity.NotificationJob) error {
	transport, ok := srv.transports[channel]
	if !ok {
		return errors.Errorf("no transport configured for channel %s", channel)
	}

	attempts := max(srv.strategy.Attempts, 1)
	delay := srv.strategy.Delay

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = transport.Send(ctx, job); err == nil {
			return nil
		}

		srv.log(ctx).Debug("Transport send failed",
			slog.String("jobId", job.ID.String()),
			slog.String("channel", string(channel)),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)

		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "delivery interrupted")
		case <-time.After(delay):
		}

		if srv.strategy.Backoff > 1 {
			delay = time.Duration(float64(delay) * srv.strategy.Backoff)
		}
	}

	return errors.Wrapf(err, "send %s after %d attempts", channel, attempts)
}
