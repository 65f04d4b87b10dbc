// Package imaging normalizes uploaded photos.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"lostfound/config"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	defaultMaxDimension = 1024
	defaultQuality      = 85

	// maxUploadBytes caps the decoded input read from the request.
	maxUploadBytes = 10 << 20
)

var (
	ErrUnsupportedFormat = errors.New("only JPEG and PNG images are accepted")
	ErrImageTooLarge     = errors.New("image exceeds 10 MiB")
)

type processor struct {
	maxDimension int
	quality      int
}

// NewProcessor returns an ImageProcessor that downscales and re-encodes to JPEG.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	p := &processor{maxDimension: defaultMaxDimension, quality: defaultQuality}
	if s := cfg.ImageStorage; s != nil {
		if s.MaxDimension > 0 {
			p.maxDimension = s.MaxDimension
		}
		if s.Quality > 0 && s.Quality <= 100 {
			p.quality = s.Quality
		}
	}

	return p
}

func (p *processor) Process(r io.Reader) (*service.ProcessedImage, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}
	if len(raw) > maxUploadBytes {
		return nil, ErrImageTooLarge
	}

	var src image.Image
	switch http.DetectContentType(raw) {
	case "image/jpeg":
		src, err = jpeg.Decode(bytes.NewReader(raw))
	case "image/png":
		src, err = png.Decode(bytes.NewReader(raw))
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	dst := p.resize(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	bounds := dst.Bounds()

	return &service.ProcessedImage{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Extension:   "jpg",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// resize scales src so its longest edge is at most maxDimension.
func (p *processor) resize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)
	if longest <= p.maxDimension {
		return src
	}

	nw := max(1, w*p.maxDimension/longest)
	nh := max(1, h*p.maxDimension/longest)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	return dst
}
