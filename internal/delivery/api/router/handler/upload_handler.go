package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadField = "file"

// UploadHandler accepts item photos
type UploadHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(imageUC usecase.ImageUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{imageUC: imageUC, logger: logger}
}

// UploadImageResponse is the body of POST /upload/image
type UploadImageResponse struct {
	PhotoURL string `json:"photoUrl"`
}

// UploadImage handles POST /upload/image with a multipart "file" field
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	ctx := c.Request().Context()
	photoURL, err := h.imageUC.UploadImage(ctx, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Image uploaded",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
		slog.String("photo_url", photoURL),
	)

	return response.Success(c, http.StatusCreated, UploadImageResponse{PhotoURL: photoURL})
}

// ServeImage handles GET /static/<key>, streaming a stored photo back
func (h *UploadHandler) ServeImage(c echo.Context) error {
	img, err := h.imageUC.GetImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400, immutable")

	return c.Blob(http.StatusOK, img.ContentType, img.Data)
}
