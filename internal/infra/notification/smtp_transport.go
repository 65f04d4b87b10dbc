package notification

import (
	"context"
	"log/slog"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// mailSender is the part of *gomail.Dialer the transport uses.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpTransport struct {
	sender   mailSender
	from     string
	fromName string
	logger   *slog.Logger
}

// NewSMTPTransport creates the email transport backed by an SMTP relay.
func NewSMTPTransport(cfg *config.SMTPConfig, logger *slog.Logger) (service.NotificationTransport, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, errors.New("smtp host is required for smtp transport")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required for smtp transport")
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}

	return newSMTPTransport(gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password), cfg.From, cfg.FromName, logger), nil
}

func newSMTPTransport(sender mailSender, from, fromName string, logger *slog.Logger) *smtpTransport {
	return &smtpTransport{
		sender:   sender,
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (t *smtpTransport) Channel() entity.Channel {
	return entity.ChannelEmail
}

func (t *smtpTransport) Send(ctx context.Context, job *entity.NotificationJob) error {
	if job.RecipientEmail == "" {
		return errors.New("job has no recipient email")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	rendered := Render(job)

	msg := gomail.NewMessage()
	if t.fromName != "" {
		msg.SetAddressHeader("From", t.from, t.fromName)
	} else {
		msg.SetHeader("From", t.from)
	}
	if job.RecipientName != "" {
		msg.SetAddressHeader("To", job.RecipientEmail, job.RecipientName)
	} else {
		msg.SetHeader("To", job.RecipientEmail)
	}
	msg.SetHeader("Subject", rendered.Subject)
	msg.SetBody("text/plain", rendered.Body)

	if err := t.sender.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	deliverycontext.GetLoggerOrDefault(ctx, t.logger).Debug("Email sent",
		slog.String("jobId", job.ID.String()),
		slog.String("subject", rendered.Subject),
	)

	return nil
}
