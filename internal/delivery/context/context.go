// Package context carries request-scoped values (request ID, logger, caller) between
// the delivery layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	userIDKey
)

// echo.Context keys mirror the context.Context ones so handlers can read either.
const (
	echoRequestIDKey = "request_id"
	echoUserIDKey    = "user_id"
)

const (
	// HeaderXRequestID is propagated from and back to the caller.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXUserID carries the caller's user ID when token verification is disabled.
	HeaderXUserID = "X-User-Id"
)

// SetRequestID stores the request ID on echo.Context. The standard context is
// populated separately by the middleware, together with the scoped logger.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request ID recorded on echo.Context, or the one in the
// request context, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when none was attached.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetUserID stores the credential subject in both echo.Context and the request context.
func SetUserID(c echo.Context, userID string) {
	c.Set(echoUserIDKey, userID)
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

func GetUserID(c echo.Context) string {
	id, _ := c.Get(echoUserIDKey).(string)

	return id
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)

	return id
}
