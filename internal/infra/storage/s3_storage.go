// Package storage stores uploaded item photos in object storage.
package storage

import (
	"bytes"
	"context"
	"io"
	"strings"

	"lostfound/config"
	"lostfound/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// objectAPI is the slice of the S3 client used for photos.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Storage struct {
	client  objectAPI
	bucket  string
	baseURL string
}

// NewS3Storage builds an S3 client from the default AWS credential chain.
func NewS3Storage(ctx context.Context, cfg *config.ImageStorageConfig) (service.ImageStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required for s3 image storage")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newS3Storage(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func newS3Storage(client objectAPI, bucket, baseURL string) *s3Storage {
	return &s3Storage{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *s3Storage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", errors.Wrapf(err, "failed to put object %s", key)
	}

	return publicURL(s.baseURL, key), nil
}

func (s *s3Storage) Get(ctx context.Context, key string) (*service.StoredImage, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return nil, service.ErrObjectNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get object %s", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return &service.StoredImage{Data: data, ContentType: aws.ToString(out.ContentType)}, nil
}

func publicURL(baseURL, key string) string {
	if baseURL == "" {
		return "/" + key
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + key
}
