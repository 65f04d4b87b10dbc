package middleware

import (
	"log/slog"
	"strings"

	"lostfound/config"
	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// CredentialMiddleware puts the caller's user ID into the request context
type CredentialMiddleware struct {
	verifier service.TokenVerifier
	enabled  bool
	logger   *slog.Logger
}

// NewCredentialMiddleware is the constructor for CredentialMiddleware.
func NewCredentialMiddleware(verifier service.TokenVerifier, cfg *config.Config, logger *slog.Logger) *CredentialMiddleware {
	return &CredentialMiddleware{
		verifier: verifier,
		enabled:  cfg.Auth != nil && cfg.Auth.Enabled,
		logger:   logger,
	}
}

// Authenticate requires a verified bearer token when auth is enabled.
// Otherwise the X-User-Id header, if any, is trusted.
func (m *CredentialMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			if userID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXUserID)); userID != "" {
				deliverycontext.SetUserID(c, userID)
			}

			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails("bearer token required"))
		}

		claims, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected credential", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))
		}

		deliverycontext.SetUserID(c, claims.Subject)

		return next(c)
	}
}
