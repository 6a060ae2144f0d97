package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"menumaster/config"
	deliverycontext "menumaster/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog writes one line per request. Outside debug mode only server errors are logged.
func AccessLog(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	debug := cfg.Env.Debug

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Resolve the status now; otherwise it is still 200 here.
				c.Error(err)
			}

			status := c.Response().Status
			if !debug && status < http.StatusInternalServerError {
				return nil
			}

			req := c.Request()
			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes_out", c.Response().Size),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if req.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", req.URL.RawQuery))
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			ctx := req.Context()
			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, levelFor(status), "HTTP request", attrs...)

			return nil
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
