package handler

import (
	"net/http"

	"lostfound/internal/delivery/api/response"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"
	"lostfound/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QRCodeHandler renders claim QR codes for item tags
type QRCodeHandler struct {
	itemUC usecase.ItemUsecase
	qrSvc  service.QRCodeService
}

// NewQRCodeHandler is the constructor for QRCodeHandler
func NewQRCodeHandler(itemUC usecase.ItemUsecase, qrSvc service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{itemUC: itemUC, qrSvc: qrSvc}
}

// ClaimQR handles GET /items/:id/qr
func (h *QRCodeHandler) ClaimQR(c echo.Context) error {
	id, err := parseItemID(c)
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrSvc.GenerateClaimQR(item.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate claim QR code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
