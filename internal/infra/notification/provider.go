package notification

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TransportParams holds dependencies for the notification transports, injected by Fx
type TransportParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Transports exposes one transport per channel to the "transports" group
type Transports struct {
	fx.Out

	Email service.NotificationTransport `group:"transports"`
	Push  service.NotificationTransport `group:"transports"`
}

// NewTransports builds the email and push transports selected in configuration.
func NewTransports(params TransportParams) (Transports, error) {
	cfg := params.Config.Notification
	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}

	var out Transports
	var err error

	switch cfg.Email {
	case "", constants.TransportProviderLog:
		out.Email = NewLogTransport(entity.ChannelEmail, params.Logger)
	case constants.TransportProviderSMTP:
		out.Email, err = NewSMTPTransport(params.Config.SMTP, params.Logger)
		if err != nil {
			return Transports{}, err
		}
	default:
		return Transports{}, errors.Errorf("unknown email transport: %s", cfg.Email)
	}

	switch cfg.Push {
	case "", constants.TransportProviderLog:
		out.Push = NewLogTransport(entity.ChannelPush, params.Logger)
	case constants.TransportProviderFirebase:
		out.Push, err = NewFirebaseTransport(params.Ctx, params.Config.Firebase, params.Logger)
		if err != nil {
			return Transports{}, err
		}
	default:
		return Transports{}, errors.Errorf("unknown push transport: %s", cfg.Push)
	}

	params.Logger.Info("Notification transports configured",
		slog.String("email", orDefault(cfg.Email, constants.TransportProviderLog)),
		slog.String("push", orDefault(cfg.Push, constants.TransportProviderLog)),
	)

	return out, nil
}

// Module provides the notification transports FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransports),
)
