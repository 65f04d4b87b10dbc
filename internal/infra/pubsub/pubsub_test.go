package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/service"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.JobEvent {
	return &service.JobEvent{RequestID: "req-1", JobID: "0f8fad5b-d9cb-469f-a165-70867728950e", Kind: "match_alert"}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		got       PushMessage
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testLogger())
	require.NoError(t, publisher.PublishJobEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "match_alert", got.Message.Attributes["kind"])
	assert.NotEmpty(t, got.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var event service.JobEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, testLogger()).PublishJobEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestKafkaPublisher_PublishJobEvent(t *testing.T) {
	producer := saramamocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event service.JobEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.JobID != testEvent().JobID {
			return errors.Errorf("unexpected job id %s", event.JobID)
		}

		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	publisher := newKafkaPublisher(producer, "lostfound-jobs", testLogger())

	require.NoError(t, publisher.PublishJobEvent(context.Background(), testEvent()))
	require.Error(t, publisher.PublishJobEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: testLogger(),
		}
	}

	t.Run("noop when unconfigured", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishJobEvent(context.Background(), testEvent()))
	})

	t.Run("local provider", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	tests := map[string]*config.PubSubConfig{
		"local without endpoint": {Provider: constants.PubSubProviderLocal},
		"google without project": {Provider: constants.PubSubProviderGoogle, TopicID: "jobs"},
		"google without topic":   {Provider: constants.PubSubProviderGoogle, ProjectID: "campus"},
		"kafka without brokers":  {Provider: constants.PubSubProviderKafka, TopicID: "jobs"},
		"kafka without topic":    {Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}},
		"unknown provider":       {Provider: "carrier-pigeon"},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(cfg))
			require.Error(t, err)
		})
	}
}
