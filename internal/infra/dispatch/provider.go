package dispatch

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the JobDispatcher, injected by Fx
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Deliverer usecase.DeliveryUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewJobDispatcher selects the dispatcher for dispatch.mode.
func NewJobDispatcher(params Params) (service.JobDispatcher, error) {
	cfg := params.Config.Dispatch
	mode := constants.DispatchModeInProcess
	if cfg != nil && cfg.Mode != "" {
		mode = cfg.Mode
	}

	switch mode {
	case constants.DispatchModeInProcess:
		pool := NewWorkerPool(params.Deliverer, cfg, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				pool.Start()

				return nil
			},
			OnStop: pool.Stop,
		})

		return pool, nil

	case constants.DispatchModeQueue:
		params.Logger.Info("Dispatching notification jobs through the event publisher")

		dispatcher := NewQueueDispatcher(params.Publisher, cfg, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				dispatcher.Start()

				return nil
			},
			OnStop: dispatcher.Stop,
		})

		return dispatcher, nil

	default:
		return nil, errors.Errorf("unknown dispatch mode: %s", mode)
	}
}

// Module provides the job dispatch FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewJobDispatcher),
)
