package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"menumaster/config"
	deliverycontext "menumaster/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(RequestScope(logger))
	e.Use(AccessLog(logger, cfg))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream down")
	})

	return e
}

func TestRequestScope(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc", rec.Body.String())
		assert.Equal(t, "abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("mints id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		require.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestAccessLog(t *testing.T) {
	t.Run("quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("server errors always logged", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), `"status":502`)
		assert.Contains(t, buf.String(), `"route":"/boom"`)
		assert.Contains(t, buf.String(), `"request_id":"req-9"`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("debug logs everything", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))

		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), `"query":"x=1"`)
	})
}
