package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
)

const publishTimeout = 10 * time.Second

// QueueDispatcher announces jobs on the event publisher for the notifier worker.
// Events are buffered and published by background goroutines, so brokers that
// acknowledge synchronously never hold up the caller.
type QueueDispatcher struct {
	publisher service.EventPublisher
	events    chan *service.JobEvent
	workers   int
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	start  sync.Once
	stop   sync.Once

	mu     sync.RWMutex
	closed bool
}

// NewQueueDispatcher sizes the publish buffer from the dispatch configuration.
func NewQueueDispatcher(publisher service.EventPublisher, cfg *config.DispatchConfig, logger *slog.Logger) *QueueDispatcher {
	workers, queueSize := 2, 256
	if cfg != nil {
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
		if cfg.QueueSize > 0 {
			queueSize = cfg.QueueSize
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &QueueDispatcher{
		publisher: publisher,
		events:    make(chan *service.JobEvent, queueSize),
		workers:   workers,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the publishing goroutines. Calling it more than once has no effect.
func (d *QueueDispatcher) Start() {
	d.start.Do(func() {
		for range d.workers {
			d.wg.Add(1)
			go d.run()
		}
		d.logger.Info("Job event publisher started", slog.Int("workers", d.workers), slog.Int("queueSize", cap(d.events)))
	})
}

// Stop refuses new events and flushes the buffer until ctx expires. Events still
// buffered after that stay pending in the store.
func (d *QueueDispatcher) Stop(ctx context.Context) error {
	d.stop.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.events)
		d.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Info("Job event publisher stopped")

		return nil
	case <-ctx.Done():
		d.cancel()

		return errors.Wrap(ctx.Err(), "job event publisher did not flush")
	}
}

// Enqueue buffers one event per pending job without blocking. A full buffer leaves the job pending.
func (d *QueueDispatcher) Enqueue(ctx context.Context, jobs ...*entity.NotificationJob) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, job := range jobs {
		if job == nil || job.Status != entity.JobStatusPending {
			continue
		}
		if d.closed {
			logger.Warn("Job event publisher stopped, job left pending", slog.String("jobId", job.ID.String()))

			continue
		}

		event := &service.JobEvent{
			RequestID: requestID,
			JobID:     job.ID.String(),
			Kind:      string(job.Kind),
		}
		select {
		case d.events <- event:
		default:
			logger.Warn("Job event buffer full, job left pending",
				slog.String("jobId", event.JobID),
				slog.Int("queueSize", cap(d.events)),
			)
		}
	}
}

func (d *QueueDispatcher) run() {
	defer d.wg.Done()

	for event := range d.events {
		d.publish(event)
	}
}

func (d *QueueDispatcher) publish(event *service.JobEvent) {
	logger := d.logger
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
	}

	ctx, cancel := context.WithTimeout(deliverycontext.WithLogger(deliverycontext.WithRequestID(d.ctx, event.RequestID), logger), publishTimeout)
	defer cancel()

	if err := d.publisher.PublishJobEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish job event, job left pending",
			slog.String("jobId", event.JobID),
			slog.Any("error", err),
		)
	}
}
