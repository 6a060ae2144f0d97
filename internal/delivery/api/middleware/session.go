package middleware

import (
	"menumaster/internal/delivery/api/response"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keySessionUser = "sessionUser"

// SessionMiddleware guards routes by the single active session.
type SessionMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(accountUC usecase.AccountUsecase) *SessionMiddleware {
	return &SessionMiddleware{accountUC: accountUC}
}

// RequireUser lets the request through only while a customer is logged in.
// The user is stored on the context for GetSessionUser.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.accountUC.CurrentSession(c.Request().Context())
		if err != nil {
			return err
		}
		if !session.IsUser() {
			return response.NoSession(c)
		}

		c.Set(keySessionUser, session.User)

		return next(c)
	}
}

// RequireAdmin lets the request through only while the admin session is active.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.accountUC.CurrentSession(c.Request().Context())
		if err != nil {
			return err
		}
		switch {
		case session.IsAdmin():
			return next(c)
		case session.IsUser():
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		default:
			return response.NoSession(c)
		}
	}
}

// GetSessionUser returns the user set by RequireUser.
func GetSessionUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keySessionUser).(*entity.User)

	return user, ok && user != nil
}
