package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	repomocks "lostfound/internal/mocks/repository"
	"lostfound/internal/infra/guard"
	servicemocks "lostfound/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	repo  *repomocks.MockNotificationRepository
	email *servicemocks.MockNotificationTransport
	push  *servicemocks.MockNotificationTransport
	guard *servicemocks.MockDeliveryGuard
	srv   *deliveryService
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()

	f := &deliveryFixture{
		repo:  repomocks.NewMockNotificationRepository(t),
		email: servicemocks.NewMockNotificationTransport(t),
		push:  servicemocks.NewMockNotificationTransport(t),
		guard: servicemocks.NewMockDeliveryGuard(t),
	}
	f.email.EXPECT().Channel().Return(entity.ChannelEmail)
	f.push.EXPECT().Channel().Return(entity.ChannelPush)

	f.srv = NewDeliveryService(DeliveryServiceParams{
		NotifRepo:  f.repo,
		Transports: []service.NotificationTransport{f.email, f.push},
		Guard:      f.guard,
		Config: &config.Config{Dispatch: &config.DispatchConfig{
			MaxAttempts: 2,
			Retry:       config.RetryConfig{Attempts: 2, Delay: time.Millisecond, Backoff: 2},
		}},
		Logger: discardLogger(),
	}).(*deliveryService)

	return f
}

func pendingJob(pushToken string) *entity.NotificationJob {
	return &entity.NotificationJob{
		ID:             uuid.New(),
		Kind:           entity.JobKindLostConfirmation,
		ItemID:         uuid.New(),
		RecipientEmail: "owner@gatech.edu",
		PushToken:      pushToken,
		Status:         entity.JobStatusPending,
	}
}

func (f *deliveryFixture) expectGuard(job *entity.NotificationJob) {
	f.guard.EXPECT().Acquire(mock.Anything, job.ID.String()).Return(true, nil)
	f.guard.EXPECT().Release(mock.Anything, job.ID.String()).Return(nil)
}

func TestDeliveryService_Deliver(t *testing.T) {
	ctx := context.Background()

	t.Run("all channels succeed", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("device-token")

		f.repo.EXPECT().FindJob(mock.Anything, job.ID).Return(job, nil)
		f.expectGuard(job)
		f.email.EXPECT().Send(mock.Anything, job).Return(nil).Once()
		f.push.EXPECT().Send(mock.Anything, job).Return(nil).Once()
		f.repo.EXPECT().UpdateJob(mock.Anything, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.Status == entity.JobStatusSent && j.Attempts == 1 && len(j.DeliveredChannels) == 2 && j.LastError == ""
		})).Return(nil)

		require.NoError(t, f.srv.Deliver(ctx, job.ID))
	})

	t.Run("failed channel keeps job pending and reports transport failure", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("device-token")

		f.repo.EXPECT().FindJob(mock.Anything, job.ID).Return(job, nil)
		f.expectGuard(job)
		f.email.EXPECT().Send(mock.Anything, job).Return(nil).Once()
		f.push.EXPECT().Send(mock.Anything, job).Return(errors.New("fcm unavailable")).Times(2)
		f.repo.EXPECT().UpdateJob(mock.Anything, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.Status == entity.JobStatusPending &&
				j.Attempts == 1 &&
				assert.ObjectsAreEqual([]entity.Channel{entity.ChannelEmail}, j.DeliveredChannels)
		})).Return(nil)

		err := f.srv.Deliver(ctx, job.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTransportFailed))
		assert.Contains(t, err.Error(), "fcm unavailable")
	})

	t.Run("redelivery only sends undelivered channels", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("device-token")
		job.Attempts = 1
		job.DeliveredChannels = []entity.Channel{entity.ChannelEmail}

		f.repo.EXPECT().FindJob(mock.Anything, job.ID).Return(job, nil)
		f.expectGuard(job)
		f.push.EXPECT().Send(mock.Anything, job).Return(nil).Once()
		f.repo.EXPECT().UpdateJob(mock.Anything, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.Status == entity.JobStatusSent && j.Attempts == 2
		})).Return(nil)

		require.NoError(t, f.srv.Deliver(ctx, job.ID))
	})

	t.Run("exhausted attempts mark the job failed", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("")
		job.Attempts = 1

		f.repo.EXPECT().FindJob(mock.Anything, job.ID).Return(job, nil)
		f.expectGuard(job)
		f.email.EXPECT().Send(mock.Anything, job).Return(errors.New("connection refused")).Times(2)
		f.repo.EXPECT().UpdateJob(mock.Anything, mock.MatchedBy(func(j *entity.NotificationJob) bool {
			return j.Status == entity.JobStatusFailed && j.Attempts == 2 && j.LastError != ""
		})).Return(nil)

		require.NoError(t, f.srv.Deliver(ctx, job.ID))
	})

	t.Run("completed jobs are skipped", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("")
		job.Status = entity.JobStatusSent

		f.expectGuard(job)
		f.repo.EXPECT().FindJob(mock.Anything, job.ID).Return(job, nil)

		require.NoError(t, f.srv.Deliver(ctx, job.ID))
	})

	t.Run("job held elsewhere is skipped", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("")

		f.guard.EXPECT().Acquire(mock.Anything, job.ID.String()).Return(false, nil)

		require.NoError(t, f.srv.Deliver(ctx, job.ID))
	})

	t.Run("guard failure is retryable", func(t *testing.T) {
		f := newDeliveryFixture(t)
		job := pendingJob("")

		f.guard.EXPECT().Acquire(mock.Anything, job.ID.String()).Return(false, errors.New("redis: connection refused"))

		err := f.srv.Deliver(ctx, job.ID)
		assert.True(t, errors.Is(err, domainerrors.ErrTransportFailed))
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newDeliveryFixture(t)
		id := uuid.New()

		f.guard.EXPECT().Acquire(mock.Anything, id.String()).Return(true, nil)
		f.guard.EXPECT().Release(mock.Anything, id.String()).Return(nil)
		f.repo.EXPECT().FindJob(mock.Anything, id).Return(nil, repository.ErrJobNotFound)

		err := f.srv.Deliver(ctx, id)
		assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
	})
}

func TestDeliveryService_SendWithRetryStopsOnCancel(t *testing.T) {
	f := newDeliveryFixture(t)
	f.srv.strategy.Delay = time.Hour
	job := pendingJob("")

	ctx, cancel := context.WithCancel(context.Background())
	f.email.EXPECT().Send(mock.Anything, job).
		Run(func(context.Context, *entity.NotificationJob) { cancel() }).
		Return(errors.New("timeout")).Once()

	err := f.srv.sendWithRetry(ctx, entity.ChannelEmail, job)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// stallingJobs blocks the first FindJob after it has loaded the row.
type stallingJobs struct {
	repository.NotificationRepository

	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (r *stallingJobs) FindJob(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	job, err := r.NotificationRepository.FindJob(ctx, id)
	r.once.Do(func() {
		close(r.loaded)
		<-r.release
	})

	return job, err
}

type countingTransport struct {
	sends atomic.Int32
}

func (c *countingTransport) Channel() entity.Channel { return entity.ChannelEmail }

func (c *countingTransport) Send(context.Context, *entity.NotificationJob) error {
	c.sends.Add(1)

	return nil
}

func TestDeliveryService_OverlappingRedeliveriesSendOnce(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	item := store.createItem(t, report(entity.ItemTypeLost, "Blue AirPods", "case with a sticker", entity.CategoryElectronics, "Library", time.Now()))
	job := entity.NewConfirmationJob(item, time.Now())
	require.NoError(t, store.jobs.CreateJobs(ctx, []*entity.NotificationJob{job}))

	jobs := &stallingJobs{
		NotificationRepository: store.jobs,
		loaded:                 make(chan struct{}),
		release:                make(chan struct{}),
	}
	email := &countingTransport{}
	srv := NewDeliveryService(DeliveryServiceParams{
		NotifRepo:  jobs,
		Transports: []service.NotificationTransport{email},
		Guard:      guard.NewMemoryGuard(time.Minute),
		Logger:     discardLogger(),
	})

	first := make(chan error, 1)
	go func() { first <- srv.Deliver(ctx, job.ID) }()
	<-jobs.loaded

	require.NoError(t, srv.Deliver(ctx, job.ID))
	assert.Equal(t, int32(0), email.sends.Load())

	close(jobs.release)
	require.NoError(t, <-first)

	require.NoError(t, srv.Deliver(ctx, job.ID))
	assert.Equal(t, int32(1), email.sends.Load())

	stored, err := store.jobs.FindJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusSent, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
}
