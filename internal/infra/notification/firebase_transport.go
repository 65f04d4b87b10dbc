package notification

import (
	"context"
	"log/slog"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the part of *messaging.Client the transport uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseTransport struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseTransport creates the push transport backed by Firebase Cloud Messaging.
func NewFirebaseTransport(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationTransport, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for firebase transport")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseTransport{client: client, logger: logger}, nil
}

func (t *firebaseTransport) Channel() entity.Channel {
	return entity.ChannelPush
}

// Send pushes the job to one device. Unregistered tokens are dropped, not retried.
func (t *firebaseTransport) Send(ctx context.Context, job *entity.NotificationJob) error {
	if job.PushToken == "" {
		return errors.New("job has no push token")
	}

	rendered := Render(job)
	message := &messaging.Message{
		Token: job.PushToken,
		Notification: &messaging.Notification{
			Title: rendered.PushTitle,
			Body:  rendered.PushBody,
		},
		Data: pushData(job),
	}

	messageID, err := t.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			deliverycontext.GetLoggerOrDefault(ctx, t.logger).Warn("Dropping push for invalid device token",
				slog.String("jobId", job.ID.String()),
				slog.Any("error", err),
			)

			return nil
		}

		return errors.Wrap(err, "failed to send push notification")
	}

	deliverycontext.GetLoggerOrDefault(ctx, t.logger).Debug("Push sent",
		slog.String("jobId", job.ID.String()),
		slog.String("messageId", messageID),
	)

	return nil
}
