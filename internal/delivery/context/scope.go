// Package context carries the request id and the request-scoped logger across layers.
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
)

// HeaderXRequestID is read from inbound requests and echoed on responses and outbound calls.
const HeaderXRequestID = echo.HeaderXRequestID

// Scope binds requestID to ctx and returns it together with a child of base tagged with the id
// and any extra attrs. The logger is stored on the context as well.
func Scope(ctx context.Context, base *slog.Logger, requestID string, attrs ...slog.Attr) (context.Context, *slog.Logger) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("request_id", requestID))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger := base.With(args...)

	ctx = WithRequestID(ctx, requestID)

	return context.WithValue(ctx, loggerKey, logger), logger
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when no id was bound.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetRequestID reads the id bound to the echo request.
func GetRequestID(c echo.Context) string {
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
