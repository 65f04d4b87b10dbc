package storage

import (
	"context"

	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobStorage opens a portable bucket by URL.
func NewBlobStorage(ctx context.Context, bucketURL, baseURL string) (*blobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket, baseURL: baseURL}, nil
}

var _ service.ImageStorage = (*blobStorage)(nil)

func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return publicURL(s.baseURL, key), nil
}

func (s *blobStorage) Get(ctx context.Context, key string) (*service.StoredImage, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, service.ErrObjectNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat object %s", key)
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return &service.StoredImage{Data: data, ContentType: attrs.ContentType}, nil
}

// Close releases the bucket.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
