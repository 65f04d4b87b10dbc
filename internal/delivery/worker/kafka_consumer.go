package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lostfound/config"
	"lostfound/internal/delivery"
	"lostfound/internal/delivery/worker/handler"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxRedeliveryDelay = 30 * time.Second

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.JobProcessor
}

type kafkaConsumer struct {
	group     sarama.ConsumerGroup
	topic     string
	groupID   string
	processor *handler.JobProcessor
	logger    *slog.Logger

	maxRounds int
	baseDelay time.Duration
}

type disabledConsumer struct{}

func (disabledConsumer) Serve(context.Context) error { return nil }

// NewKafkaConsumer joins the notifier consumer group when pubsub.provider is kafka
// and worker.consumeKafka is set. Otherwise it returns a delivery that does nothing.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	ps := params.Cfg.PubSub
	if ps == nil || ps.Provider != constants.PubSubProviderKafka ||
		params.Cfg.Worker == nil || !params.Cfg.Worker.ConsumeKafka {
		return disabledConsumer{}, nil
	}
	if len(ps.Brokers) == 0 || ps.TopicID == "" || ps.ConsumerGroup == "" {
		return nil, errors.New("kafka consumer requires brokers, topicId and consumerGroup")
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(ps.Brokers, ps.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer group")
	}

	consumer := newKafkaConsumer(group, ps.TopicID, ps.ConsumerGroup, params.Processor, params.Cfg.Dispatch, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Kafka consumer")

			return errors.WithStack(group.Close())
		},
	})

	return consumer, nil
}

func newKafkaConsumer(group sarama.ConsumerGroup, topic, groupID string, processor *handler.JobProcessor, dispatch *config.DispatchConfig, logger *slog.Logger) *kafkaConsumer {
	c := &kafkaConsumer{
		group:     group,
		topic:     topic,
		groupID:   groupID,
		processor: processor,
		logger:    logger,
		maxRounds: 5,
		baseDelay: 500 * time.Millisecond,
	}
	if dispatch != nil {
		if dispatch.MaxAttempts > 0 {
			c.maxRounds = dispatch.MaxAttempts
		}
		if dispatch.Retry.Delay > 0 {
			c.baseDelay = dispatch.Retry.Delay
		}
	}

	return c
}

// Serve consumes until ctx is canceled or the group is closed.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			c.logger.Error("Kafka consumer error", slog.Any("error", err))
		}
	}()

	c.logger.Info("Kafka consumer started", slog.String("group", c.groupID), slog.String("topic", c.topic))

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) || errors.Is(err, context.Canceled) {
				return nil
			}
			c.logger.Error("Kafka consume failed", slog.Any("error", err))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (c *kafkaConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (c *kafkaConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages()
func (c *kafkaConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			c.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage runs delivery rounds for one message until it succeeds, fails
// permanently, or the job's round budget is spent.
func (c *kafkaConsumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var event service.JobEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.logger.Error("[Worker] Dropping malformed job event",
			slog.Int64("offset", message.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := headerValue(message, "request_id")
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	for round := 0; ; round++ {
		err := c.processor.Process(ctx, &event, requestID)
		if err == nil {
			return
		}

		retryable := handler.IsRetryableError(err)
		c.logger.Warn("[Worker] Delivery round failed",
			slog.String("request_id", requestID),
			slog.String("job_id", event.JobID),
			slog.Int("round", round+1),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if !retryable || round+1 >= c.maxRounds {
			return
		}

		delay := min(c.baseDelay<<round, maxRedeliveryDelay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func headerValue(message *sarama.ConsumerMessage, key string) string {
	for _, h := range message.Headers {
		if h != nil && string(h.Key) == key {
			return string(h.Value)
		}
	}

	return ""
}
