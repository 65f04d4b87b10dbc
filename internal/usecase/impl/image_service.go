package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"regexp"

	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const imageKeyPrefix = "items"

// imageKeyPattern matches the keys UploadImage produces.
var imageKeyPattern = regexp.MustCompile(`^items/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(jpg|png)$`)

type imageService struct {
	processor service.ImageProcessor
	storage   service.ImageStorage
	logger    *slog.Logger
}

// NewImageService creates the photo upload use case.
func NewImageService(processor service.ImageProcessor, storage service.ImageStorage, logger *slog.Logger) usecase.ImageUsecase {
	return &imageService{
		processor: processor,
		storage:   storage,
		logger:    logger,
	}
}

// UploadImage normalizes the image and stores it under items/<uuid>.<ext>.
func (srv *imageService) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	img, err := srv.processor.Process(r)
	if err != nil {
		return "", domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}

	key := path.Join(imageKeyPrefix, uuid.New().String()+"."+img.Extension)

	url, err := srv.storage.Put(ctx, key, img.ContentType, img.Data)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Image stored",
		slog.String("key", key),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Int("bytes", len(img.Data)),
	)

	return url, nil
}

// GetImage returns a stored photo. Only keys shaped like upload keys are looked up.
func (srv *imageService) GetImage(ctx context.Context, key string) (*service.StoredImage, error) {
	if !imageKeyPattern.MatchString(key) {
		return nil, domainerrors.ErrImageNotFound.WithDetails(key)
	}

	img, err := srv.storage.Get(ctx, key)
	if errors.Is(err, service.ErrObjectNotFound) {
		return nil, domainerrors.ErrImageNotFound.WithDetails(key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read image %s", key)
	}

	return img, nil
}
