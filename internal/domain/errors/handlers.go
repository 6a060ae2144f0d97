package errors

import (
	"github.com/pkg/errors"
)

// HTTPStatus returns the HTTP status carried by err, or 500 when err is not an AppError.
func HTTPStatus(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 500
}

// Code returns the business error code carried by err, or ErrInternalError's code.
func Code(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ErrInternalError.ErrorCode()
}

// IsClientError reports whether err is an AppError in the 4xx range.
func IsClientError(err error) bool {
	status := HTTPStatus(err)

	return status >= 400 && status < 500
}
