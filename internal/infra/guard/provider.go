package guard

import (
	"context"
	"log/slog"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 2 * time.Minute

// Params holds dependencies for the DeliveryGuard, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryGuard selects the guard for dispatch.guard.
func NewDeliveryGuard(params Params) (service.DeliveryGuard, error) {
	provider, ttl := constants.GuardProviderMemory, defaultTTL
	if d := params.Config.Dispatch; d != nil {
		if d.Guard != "" {
			provider = d.Guard
		}
		if d.GuardTTL > 0 {
			ttl = d.GuardTTL
		}
	}

	switch provider {
	case constants.GuardProviderMemory:
		return NewMemoryGuard(ttl), nil

	case constants.GuardProviderRedis:
		cfg := params.Config.Redis
		if cfg == nil || cfg.Addr == "" {
			return nil, errors.New("redis address is required for redis guard")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(pingCtx).Err(); err != nil {
					return errors.Wrap(err, "failed to connect to redis")
				}
				params.Logger.Info("Redis delivery guard connected", slog.String("addr", cfg.Addr))

				return nil
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisGuard(client, ttl), nil

	default:
		return nil, errors.Errorf("unknown delivery guard: %s", provider)
	}
}

// Module provides the delivery guard FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeliveryGuard),
)
