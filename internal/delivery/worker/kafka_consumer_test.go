package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/delivery/worker/handler"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	usecasemocks "lostfound/internal/mocks/usecase"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConsumer(t *testing.T, maxRounds int) (*kafkaConsumer, *usecasemocks.MockDeliveryUsecase) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deliverer := usecasemocks.NewMockDeliveryUsecase(t)
	dispatch := &config.DispatchConfig{MaxAttempts: maxRounds, Retry: config.RetryConfig{Delay: time.Millisecond}}

	return newKafkaConsumer(nil, "lostfound-jobs", "lostfound-notifier", handler.NewJobProcessor(deliverer, logger), dispatch, logger), deliverer
}

func message(t *testing.T, event *service.JobEvent, requestID string) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)

	msg := &sarama.ConsumerMessage{Key: []byte(event.JobID), Value: value, Offset: 7}
	if requestID != "" {
		msg.Headers = []*sarama.RecordHeader{{Key: []byte("request_id"), Value: []byte(requestID)}}
	}

	return msg
}

func TestKafkaConsumer_HandleMessage(t *testing.T) {
	jobID := uuid.New()
	event := &service.JobEvent{JobID: jobID.String(), Kind: "match_alert"}

	t.Run("delivered once with the header request id", func(t *testing.T) {
		c, deliverer := newTestConsumer(t, 3)

		var requestID string
		deliverer.EXPECT().Deliver(mock.Anything, jobID).
			Run(func(ctx context.Context, _ uuid.UUID) {
				requestID = deliverycontext.GetRequestIDFromContext(ctx)
			}).
			Return(nil).Once()

		c.handleMessage(context.Background(), message(t, event, "req-kafka"))
		assert.Equal(t, "req-kafka", requestID)
	})

	t.Run("retryable failures use the round budget", func(t *testing.T) {
		c, deliverer := newTestConsumer(t, 3)
		deliverer.EXPECT().Deliver(mock.Anything, jobID).Return(domainerrors.ErrTransportFailed).Times(3)

		c.handleMessage(context.Background(), message(t, event, ""))
	})

	t.Run("recovers on a later round", func(t *testing.T) {
		c, deliverer := newTestConsumer(t, 3)
		deliverer.EXPECT().Deliver(mock.Anything, jobID).Return(domainerrors.ErrTransportFailed).Once()
		deliverer.EXPECT().Deliver(mock.Anything, jobID).Return(nil).Once()

		c.handleMessage(context.Background(), message(t, event, ""))
	})

	t.Run("permanent failure stops", func(t *testing.T) {
		c, deliverer := newTestConsumer(t, 3)
		deliverer.EXPECT().Deliver(mock.Anything, jobID).Return(domainerrors.ErrJobNotFound).Once()

		c.handleMessage(context.Background(), message(t, event, ""))
	})

	t.Run("malformed value is dropped", func(t *testing.T) {
		c, _ := newTestConsumer(t, 3)
		c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")})
	})
}

func TestNewKafkaConsumer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := handler.NewJobProcessor(usecasemocks.NewMockDeliveryUsecase(t), logger)

	d, err := NewKafkaConsumer(KafkaConsumerParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger:    logger,
		Processor: processor,
	})
	require.NoError(t, err)
	assert.IsType(t, disabledConsumer{}, d)
	assert.NoError(t, d.Serve(context.Background()))

	_, err = NewKafkaConsumer(KafkaConsumerParams{
		Lc: fxtest.NewLifecycle(t),
		Cfg: &config.Config{
			PubSub: &config.PubSubConfig{Provider: "kafka"},
			Worker: &config.WorkerConfig{ConsumeKafka: true},
		},
		Logger:    logger,
		Processor: processor,
	})
	require.Error(t, err)
}
