package response

import (
	"net/http"

	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail    string `json:"detail"`    // Human-readable description
	Code      string `json:"code"`      // Machine-readable error code, e.g., "VALIDATION_FAILED"
	RequestID string `json:"requestId"` // Request tracking ID
}

// Success writes data as the response body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, detail string) error {
	return c.JSON(statusCode, ErrorResponse{
		Detail:    detail,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusBadRequest, errorCode, detail)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusUnauthorized, errorCode, detail)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusNotFound, errorCode, detail)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusInternalServerError, errorCode, detail)
}

// AppError renders a domain error. 5xx responses never carry internal details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	detail := appErr.Error()
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		detail = appErr.Message()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), detail)
}

// HandleAppError renders domain errors and passes anything else to the central error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
