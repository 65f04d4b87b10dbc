package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	servicemocks "lostfound/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImageService_UploadImage(t *testing.T) {
	processed := &service.ProcessedImage{
		Data:        []byte{0xff, 0xd8, 0xff},
		ContentType: "image/jpeg",
		Extension:   "jpg",
		Width:       640,
		Height:      480,
	}

	t.Run("stores processed image under items prefix", func(t *testing.T) {
		processor := servicemocks.NewMockImageProcessor(t)
		storage := servicemocks.NewMockImageStorage(t)
		srv := NewImageService(processor, storage, discardLogger())

		processor.EXPECT().Process(mock.Anything).Return(processed, nil)

		var key string
		storage.EXPECT().Put(mock.Anything, mock.AnythingOfType("string"), "image/jpeg", processed.Data).
			Run(func(_ context.Context, k string, _ string, _ []byte) { key = k }).
			Return("https://img.example.com/items/photo.jpg", nil)

		url, err := srv.UploadImage(context.Background(), bytes.NewReader([]byte("raw")))
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/items/photo.jpg", url)
		assert.True(t, strings.HasPrefix(key, "items/"))
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	})

	t.Run("undecodable image", func(t *testing.T) {
		processor := servicemocks.NewMockImageProcessor(t)
		srv := NewImageService(processor, servicemocks.NewMockImageStorage(t), discardLogger())

		processor.EXPECT().Process(mock.Anything).Return(nil, errors.New("unsupported content type text/plain"))

		_, err := srv.UploadImage(context.Background(), strings.NewReader("hello"))
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage))
	})

	t.Run("storage failure", func(t *testing.T) {
		processor := servicemocks.NewMockImageProcessor(t)
		storage := servicemocks.NewMockImageStorage(t)
		srv := NewImageService(processor, storage, discardLogger())

		processor.EXPECT().Process(mock.Anything).Return(processed, nil)
		storage.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("access denied"))

		_, err := srv.UploadImage(context.Background(), bytes.NewReader([]byte("raw")))
		assert.True(t, errors.Is(err, domainerrors.ErrImageUploadFailed))
	})
}

func TestImageService_GetImage(t *testing.T) {
	const key = "items/3f0c1f9e-6a55-4a42-9a53-1d2f6c7b8e90.jpg"

	t.Run("reads stored image", func(t *testing.T) {
		storage := servicemocks.NewMockImageStorage(t)
		srv := NewImageService(servicemocks.NewMockImageProcessor(t), storage, discardLogger())

		stored := &service.StoredImage{Data: []byte{0xff, 0xd8}, ContentType: "image/jpeg"}
		storage.EXPECT().Get(mock.Anything, key).Return(stored, nil)

		img, err := srv.GetImage(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, stored, img)
	})

	t.Run("missing object", func(t *testing.T) {
		storage := servicemocks.NewMockImageStorage(t)
		srv := NewImageService(servicemocks.NewMockImageProcessor(t), storage, discardLogger())

		storage.EXPECT().Get(mock.Anything, key).Return(nil, service.ErrObjectNotFound)

		_, err := srv.GetImage(context.Background(), key)
		assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
	})

	t.Run("keys outside the upload layout are never looked up", func(t *testing.T) {
		srv := NewImageService(servicemocks.NewMockImageProcessor(t), servicemocks.NewMockImageStorage(t), discardLogger())

		for _, bad := range []string{"", "items/../config.yaml", "secrets/key.jpg", "items/not-a-uuid.jpg"} {
			_, err := srv.GetImage(context.Background(), bad)
			assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound), bad)
		}
	})
}
