package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newEcho(&bytes.Buffer{}, false)

	t.Run("inbound id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Body.String())
		assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, rec.Body.String())
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		for _, inbound := range []string{"has space", strings.Repeat("a", 129)} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, inbound)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.NotEqual(t, inbound, rec.Body.String())
			assert.NotEmpty(t, rec.Body.String())
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf, true)

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-456")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTTP Request", entry["msg"])
	assert.Equal(t, "req-456", entry["request_id"])
	assert.Equal(t, "/ping", entry["uri"])
	assert.Equal(t, "x=1", entry["query"])

	buf.Reset()
	newEcho(&buf, false).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Empty(t, buf.String())
}
