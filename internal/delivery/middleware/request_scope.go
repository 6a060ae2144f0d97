// Package middleware holds echo middleware shared by the API and the notify worker.
package middleware

import (
	"log/slog"

	deliverycontext "menumaster/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope takes the caller's X-Request-Id or mints one, echoes it on the response and
// binds it, plus a tagged logger, to the request context.
func RequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			ctx, _ := deliverycontext.Scope(req.Context(), logger, requestID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
