package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	servicemocks "lostfound/internal/mocks/service"
	usecasemocks "lostfound/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pending() *entity.NotificationJob {
	return &entity.NotificationJob{ID: uuid.New(), Kind: entity.JobKindMatchAlert, Status: entity.JobStatusPending}
}

func waitFor(t *testing.T, ch <-chan uuid.UUID, n int) []uuid.UUID {
	t.Helper()

	got := make([]uuid.UUID, 0, n)
	timeout := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case id := <-ch:
			got = append(got, id)
		case <-timeout:
			t.Fatalf("timed out after %d of %d deliveries", len(got), n)
		}
	}

	return got
}

func TestWorkerPool_DeliversPendingJobs(t *testing.T) {
	deliverer := usecasemocks.NewMockDeliveryUsecase(t)
	pool := NewWorkerPool(deliverer, &config.DispatchConfig{Workers: 2, QueueSize: 8}, testLogger())

	delivered := make(chan uuid.UUID, 8)
	requestIDs := make(chan string, 8)
	deliverer.EXPECT().Deliver(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) error {
			requestIDs <- deliverycontext.GetRequestIDFromContext(ctx)
			delivered <- id

			return nil
		})

	pool.Start()
	t.Cleanup(func() { _ = pool.Stop(context.Background()) })

	a, b := pending(), pending()
	sent := pending()
	sent.Status = entity.JobStatusSent

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	pool.Enqueue(ctx, a, sent, b, nil)

	got := waitFor(t, delivered, 2)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, got)
	assert.Equal(t, "req-42", <-requestIDs)
}

func TestWorkerPool_FullQueueDoesNotBlock(t *testing.T) {
	deliverer := usecasemocks.NewMockDeliveryUsecase(t)
	pool := NewWorkerPool(deliverer, &config.DispatchConfig{Workers: 1, QueueSize: 1}, testLogger())

	done := make(chan struct{})
	go func() {
		pool.Enqueue(context.Background(), pending(), pending(), pending())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
	assert.Len(t, pool.queue, 1)
}

func TestWorkerPool_RedeliversRetryableFailures(t *testing.T) {
	deliverer := usecasemocks.NewMockDeliveryUsecase(t)
	pool := NewWorkerPool(deliverer, &config.DispatchConfig{
		Workers:   1,
		QueueSize: 4,
		Retry:     config.RetryConfig{Delay: time.Millisecond},
	}, testLogger())

	job := pending()
	delivered := make(chan uuid.UUID, 4)
	deliverer.EXPECT().Deliver(mock.Anything, job.ID).
		Return(domainerrors.ErrTransportFailed.WithDetails("smtp down")).Once()
	deliverer.EXPECT().Deliver(mock.Anything, job.ID).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			delivered <- id

			return nil
		}).Once()

	pool.Start()
	t.Cleanup(func() { _ = pool.Stop(context.Background()) })

	pool.Enqueue(context.Background(), job)

	assert.Equal(t, []uuid.UUID{job.ID}, waitFor(t, delivered, 1))
}

func TestWorkerPool_StoppedPoolLeavesJobsPending(t *testing.T) {
	deliverer := usecasemocks.NewMockDeliveryUsecase(t)
	pool := NewWorkerPool(deliverer, &config.DispatchConfig{Workers: 1, QueueSize: 4}, testLogger())

	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	pool.Enqueue(context.Background(), pending())
	assert.Empty(t, pool.queue)
}

func TestQueueDispatcher_Enqueue(t *testing.T) {
	publisher := servicemocks.NewMockEventPublisher(t)
	dispatcher := NewQueueDispatcher(publisher, &config.DispatchConfig{Workers: 1, QueueSize: 4}, testLogger())

	first, second := pending(), pending()
	published := make(chan uuid.UUID, 2)
	publisher.EXPECT().PublishJobEvent(mock.Anything, &service.JobEvent{
		RequestID: "req-7",
		JobID:     first.ID.String(),
		Kind:      string(entity.JobKindMatchAlert),
	}).Run(func(context.Context, *service.JobEvent) { published <- first.ID }).
		Return(errors.New("topic not found")).Once()
	publisher.EXPECT().PublishJobEvent(mock.Anything, mock.MatchedBy(func(e *service.JobEvent) bool {
		return e.JobID == second.ID.String()
	})).Run(func(ctx context.Context, _ *service.JobEvent) {
		assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
		published <- second.ID
	}).Return(nil).Once()

	dispatcher.Start()
	dispatcher.Enqueue(deliverycontext.WithRequestID(context.Background(), "req-7"), first, second)

	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, waitFor(t, published, 2))
	require.NoError(t, dispatcher.Stop(context.Background()))
}

func TestQueueDispatcher_SlowBrokerDoesNotBlockCaller(t *testing.T) {
	publisher := servicemocks.NewMockEventPublisher(t)
	dispatcher := NewQueueDispatcher(publisher, &config.DispatchConfig{Workers: 1, QueueSize: 2}, testLogger())

	release := make(chan struct{})
	published := make(chan uuid.UUID, 3)
	publisher.EXPECT().PublishJobEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e *service.JobEvent) {
			<-release
			assert.NoError(t, ctx.Err())
			published <- uuid.MustParse(e.JobID)
		}).Return(nil)

	dispatcher.Start()

	reqCtx, cancelRequest := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		dispatcher.Enqueue(reqCtx, pending(), pending())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue waited on the broker")
	}
	cancelRequest()

	close(release)
	waitFor(t, published, 2)
	require.NoError(t, dispatcher.Stop(context.Background()))
}

func TestQueueDispatcher_FullBufferLeavesJobsPending(t *testing.T) {
	publisher := servicemocks.NewMockEventPublisher(t)
	dispatcher := NewQueueDispatcher(publisher, &config.DispatchConfig{Workers: 1, QueueSize: 1}, testLogger())

	dispatcher.Enqueue(context.Background(), pending(), pending(), pending())
	assert.Len(t, dispatcher.events, 1)

	publisher.EXPECT().PublishJobEvent(mock.Anything, mock.Anything).Return(nil).Once()
	dispatcher.Start()
	require.NoError(t, dispatcher.Stop(context.Background()))

	dispatcher.Enqueue(context.Background(), pending())
	assert.Empty(t, dispatcher.events)
}

func TestNewJobDispatcher(t *testing.T) {
	t.Run("in-process mode starts and stops with the app", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		dispatcher, err := NewJobDispatcher(Params{
			Lc:        lc,
			Config:    &config.Config{Dispatch: &config.DispatchConfig{Mode: constants.DispatchModeInProcess, Workers: 1}},
			Deliverer: usecasemocks.NewMockDeliveryUsecase(t),
			Publisher: servicemocks.NewMockEventPublisher(t),
			Logger:    testLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &WorkerPool{}, dispatcher)

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("queue mode", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		dispatcher, err := NewJobDispatcher(Params{
			Lc:        lc,
			Config:    &config.Config{Dispatch: &config.DispatchConfig{Mode: constants.DispatchModeQueue}},
			Publisher: servicemocks.NewMockEventPublisher(t),
			Logger:    testLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &QueueDispatcher{}, dispatcher)

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := NewJobDispatcher(Params{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Dispatch: &config.DispatchConfig{Mode: "carrier-pigeon"}},
			Logger: testLogger(),
		})
		require.Error(t, err)
	})
}
