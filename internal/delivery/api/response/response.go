package response

import (
	"net/http"

	deliverycontext "menumaster/internal/delivery/context"
	domainerrors "menumaster/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// envelope is the body of every API response. Error is set only on failures.
type envelope struct {
	Data  any        `json:"data"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  MetaInfo   `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, envelope{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for 401, 403 and every 5xx.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, envelope{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError reports a body or path parameter that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details(appErr))
	}

	return errors.WithStack(err)
}

// details returns the detail text of a client error, or nil.
func details(appErr domainerrors.AppError) any {
	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}

// NoSession returns a 401 for a route that requires a session.
func NoSession(c echo.Context) error {
	return HandleAppError(c, domainerrors.ErrUnauthorized)
}
