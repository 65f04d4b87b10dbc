package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxRedeliveryDelay = 5 * time.Minute

type task struct {
	jobID     uuid.UUID
	requestID string
	round     int
}

// WorkerPool delivers jobs on a fixed number of goroutines fed by a bounded queue.
type WorkerPool struct {
	deliverer usecase.DeliveryUsecase
	queue     chan task
	workers   int
	baseDelay time.Duration
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	start  sync.Once
	stop   sync.Once
}

// NewWorkerPool sizes the pool from the dispatch configuration.
func NewWorkerPool(deliverer usecase.DeliveryUsecase, cfg *config.DispatchConfig, logger *slog.Logger) *WorkerPool {
	workers, queueSize, delay := 4, 256, 500*time.Millisecond
	if cfg != nil {
		if cfg.Workers > 0 {
			workers = cfg.Workers
		}
		if cfg.QueueSize > 0 {
			queueSize = cfg.QueueSize
		}
		if cfg.Retry.Delay > 0 {
			delay = cfg.Retry.Delay
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		deliverer: deliverer,
		queue:     make(chan task, queueSize),
		workers:   workers,
		baseDelay: delay,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the workers. Calling it more than once has no effect.
func (p *WorkerPool) Start() {
	p.start.Do(func() {
		for i := range p.workers {
			p.wg.Add(1)
			go p.run(i)
		}
		p.logger.Info("Notification worker pool started", slog.Int("workers", p.workers), slog.Int("queueSize", cap(p.queue)))
	})
}

// Stop cancels in-flight deliveries and waits for the workers until ctx expires.
func (p *WorkerPool) Stop(ctx context.Context) error {
	p.stop.Do(p.cancel)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("Notification worker pool stopped", slog.Int("abandoned", len(p.queue)))

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "worker pool did not drain")
	}
}

// Enqueue offers pending jobs to the queue without blocking.
func (p *WorkerPool) Enqueue(ctx context.Context, jobs ...*entity.NotificationJob) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, job := range jobs {
		if job == nil || job.Status != entity.JobStatusPending {
			continue
		}
		p.offer(ctx, task{jobID: job.ID, requestID: requestID})
	}
}

func (p *WorkerPool) offer(ctx context.Context, t task) {
	if p.ctx.Err() != nil {
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Worker pool stopped, job left pending", slog.String("jobId", t.jobID.String()))

		return
	}

	select {
	case p.queue <- t:
	default:
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Notification queue full, job left pending",
			slog.String("jobId", t.jobID.String()),
			slog.Int("queueSize", cap(p.queue)),
		)
	}
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case t := <-p.queue:
			p.process(id, t)
		}
	}
}

func (p *WorkerPool) process(worker int, t task) {
	logger := p.logger.With(slog.Int("worker", worker))
	if t.requestID != "" {
		logger = logger.With(slog.String("request_id", t.requestID))
	}

	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(p.ctx, t.requestID), logger)

	err := p.deliverer.Deliver(ctx, t.jobID)
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrTransportFailed):
		p.redeliver(ctx, t)
	default:
		logger.Error("Notification delivery aborted", slog.String("jobId", t.jobID.String()), slog.Any("error", err))
	}
}

// redeliver re-offers the job after an exponentially growing delay.
func (p *WorkerPool) redeliver(ctx context.Context, t task) {
	delay := p.baseDelay << min(t.round, 10)
	if delay > maxRedeliveryDelay || delay <= 0 {
		delay = maxRedeliveryDelay
	}

	next := task{jobID: t.jobID, requestID: t.requestID, round: t.round + 1}
	time.AfterFunc(delay, func() {
		p.offer(ctx, next)
	})

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Redelivery scheduled",
		slog.String("jobId", t.jobID.String()),
		slog.Duration("delay", delay),
	)
}
