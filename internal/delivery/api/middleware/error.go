package middleware

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	deliverycontext "menumaster/internal/delivery/context"
	domainerrors "menumaster/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	codeHTTPError     = "HTTP_ERROR"
	codeInternalError = "INTERNAL_ERROR"
)

// ErrorMiddleware maps handler errors onto the response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if !domainerrors.IsClientError(err) {
			logger.ErrorContext(ctx, "Request failed",
				slog.String("code", domainerrors.Code(err)),
				slog.Any("error", err),
			)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			_ = response.HandleAppError(c, domainerrors.ErrNotFound)

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, codeHTTPError, message, nil)

		return
	}

	logger.ErrorContext(ctx, "Unhandled error", slog.Any("error", err))
	_ = response.InternalServerError(c, codeInternalError, "Erro interno, tente novamente mais tarde")
}
