package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"lostfound/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher with a synchronous sarama producer.
// Messages are keyed by job ID so redeliveries of a job land on one partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher connects a producer to brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *kafkaPublisher) PublishJobEvent(ctx context.Context, event *service.JobEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.JobID),
		Value: sarama.ByteEncoder(data),
	}
	for key, value := range eventAttributes(event) {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to produce job event")
	}

	p.logger.Debug("[Kafka] Job event produced",
		slog.String("job_id", event.JobID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
