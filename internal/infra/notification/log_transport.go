package notification

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"
)

// logTransport writes notifications to the log instead of sending them.
type logTransport struct {
	channel entity.Channel
	logger  *slog.Logger
}

// NewLogTransport returns a transport for channel that only logs.
func NewLogTransport(channel entity.Channel, logger *slog.Logger) service.NotificationTransport {
	return &logTransport{channel: channel, logger: logger}
}

func (t *logTransport) Channel() entity.Channel {
	return t.channel
}

func (t *logTransport) Send(ctx context.Context, job *entity.NotificationJob) error {
	msg := Render(job)

	recipient := job.RecipientEmail
	if t.channel == entity.ChannelPush {
		recipient = job.PushToken
	}

	deliverycontext.GetLoggerOrDefault(ctx, t.logger).Info("Notification (log mode)",
		slog.String("channel", string(t.channel)),
		slog.String("jobId", job.ID.String()),
		slog.String("type", msg.Subject),
		slog.String("to", recipient),
		slog.String("item", job.Payload.ItemName),
		slog.String("category", string(job.Payload.Category)),
		slog.String("location", job.Payload.Location),
	)

	return nil
}
