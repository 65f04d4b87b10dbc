package main

import (
	"context"
	"log/slog"
	"os"

	"lostfound/config"
	"lostfound/internal/delivery"
	"lostfound/internal/delivery/api"
	apimiddleware "lostfound/internal/delivery/api/middleware"
	"lostfound/internal/delivery/api/router/handler"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/domain/service"
	"lostfound/internal/infra/auth"
	"lostfound/internal/infra/dispatch"
	"lostfound/internal/infra/guard"
	"lostfound/internal/infra/imaging"
	logs "lostfound/internal/infra/log"
	"lostfound/internal/infra/notification"
	"lostfound/internal/infra/persistence"
	"lostfound/internal/infra/pubsub"
	"lostfound/internal/infra/qrcode"
	"lostfound/internal/infra/storage"
	"lostfound/internal/usecase"
	"lostfound/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			requeuePending,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.NewRepositories,
		),
		guard.Module,
		notification.Module,
		pubsub.Module,
		dispatch.Module,
		storage.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			imaging.NewProcessor,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatcherService,
			impl.NewNotifierService,
			impl.NewItemService,
			impl.NewDeliveryService,
			impl.NewImageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewCredentialMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewItemHandler,
			handler.NewUploadHandler,
			handler.NewQRCodeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// requeuePending re-dispatches jobs left pending by a previous run once the store and workers are up.
func requeuePending(lc fx.Lifecycle, notifier usecase.NotifierUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			count, err := notifier.RequeuePending(ctx)
			if err != nil {
				logger.Warn("Failed to requeue pending notification jobs", slog.Any("error", err))

				return nil
			}
			if count > 0 {
				logger.Info("Requeued pending notification jobs", slog.Int("count", count))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
