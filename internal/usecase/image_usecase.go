package usecase

import (
	"context"
	"io"

	"lostfound/internal/domain/service"
)

// ImageUsecase stores item photos.
type ImageUsecase interface {
	// UploadImage normalizes the image and returns its public URL.
	UploadImage(ctx context.Context, r io.Reader) (string, error)

	// GetImage reads back a stored photo by its object key.
	GetImage(ctx context.Context, key string) (*service.StoredImage, error)
}
