package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by ImageStorage.Get for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// ProcessedImage is a normalized image ready for storage
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// ImageProcessor validates and normalizes uploaded images
type ImageProcessor interface {
	Process(r io.Reader) (*ProcessedImage, error)
}

// StoredImage is an object read back from storage
type StoredImage struct {
	Data        []byte
	ContentType string
}

// ImageStorage stores objects and returns their public URL
type ImageStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) (*StoredImage, error)
}
