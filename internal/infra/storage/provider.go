package storage

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the ImageStorage, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage selects the storage backend for imageStorage.provider.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.ImageStorage
	if cfg == nil {
		return nil, errors.New("image storage config is required")
	}

	switch cfg.Provider {
	case constants.ImageStorageS3:
		params.Logger.Info("Using S3 image storage", slog.String("bucket", cfg.Bucket))

		return NewS3Storage(params.Ctx, cfg)

	case constants.ImageStorageBlob, "":
		bucketURL := cfg.Bucket
		if bucketURL == "" {
			bucketURL = "mem://"
		}
		store, err := NewBlobStorage(params.Ctx, bucketURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Info("Using blob image storage", slog.String("bucket", bucketURL))

		return store, nil

	default:
		return nil, errors.Errorf("unknown image storage provider: %s", cfg.Provider)
	}
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStorage),
)
