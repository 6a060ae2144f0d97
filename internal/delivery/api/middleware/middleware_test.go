package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	usecase.AccountUsecase
	session entity.Session
}

func (f *fakeAccounts) CurrentSession(context.Context) (entity.Session, error) {
	return f.session, nil
}

type body struct {
	Data  any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func serve(t *testing.T, e *echo.Echo, path string) (*httptest.ResponseRecorder, body) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var out body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return rec, out
}

func TestErrorMiddleware(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil))).HandleHTTPError

	e.GET("/not-found", func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrProductNotFound.WithDetails("id 99"), "get product")
	})
	e.GET("/unauthorized", func(echo.Context) error {
		return domainerrors.ErrUnauthorized.WithDetails("hidden")
	})
	e.GET("/teapot", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})
	e.GET("/boom", func(echo.Context) error {
		return errors.New("disk on fire")
	})

	t.Run("app error keeps client details", func(t *testing.T) {
		rec, out := serve(t, e, "/not-found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, out.Error)
		assert.Equal(t, "PRODUCT_NOT_FOUND", out.Error.Code)
		assert.Equal(t, "id 99", out.Error.Details)
		assert.Empty(t, logs.String())
	})

	t.Run("auth errors drop details", func(t *testing.T) {
		rec, out := serve(t, e, "/unauthorized")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, out.Error)
		assert.Nil(t, out.Error.Details)
	})

	t.Run("unmatched route", func(t *testing.T) {
		rec, out := serve(t, e, "/nowhere")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, out.Error)
		assert.Equal(t, "NOT_FOUND", out.Error.Code)
	})

	t.Run("echo error", func(t *testing.T) {
		rec, out := serve(t, e, "/teapot")

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, codeHTTPError, out.Error.Code)
	})

	t.Run("unknown error is hidden and logged", func(t *testing.T) {
		rec, out := serve(t, e, "/boom")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, codeInternalError, out.Error.Code)
		assert.NotContains(t, out.Error.Message, "disk on fire")
		assert.Contains(t, logs.String(), "disk on fire")
	})
}

func TestSessionMiddleware(t *testing.T) {
	user := &entity.User{ID: "u1", Name: "Ana"}

	tests := []struct {
		name      string
		session   entity.Session
		path      string
		wantCode  int
		wantError string
	}{
		{name: "user route anonymous", session: entity.Session{Kind: entity.SessionAnonymous}, path: "/me", wantCode: http.StatusUnauthorized, wantError: "UNAUTHORIZED"},
		{name: "user route with user", session: entity.Session{Kind: entity.SessionUser, User: user}, path: "/me", wantCode: http.StatusOK},
		{name: "user route with admin", session: entity.Session{Kind: entity.SessionAdmin}, path: "/me", wantCode: http.StatusUnauthorized, wantError: "UNAUTHORIZED"},
		{name: "admin route anonymous", session: entity.Session{Kind: entity.SessionAnonymous}, path: "/admin", wantCode: http.StatusUnauthorized, wantError: "UNAUTHORIZED"},
		{name: "admin route with user", session: entity.Session{Kind: entity.SessionUser, User: user}, path: "/admin", wantCode: http.StatusForbidden, wantError: "FORBIDDEN"},
		{name: "admin route with admin", session: entity.Session{Kind: entity.SessionAdmin}, path: "/admin", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSessionMiddleware(&fakeAccounts{session: tt.session})
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				u, ok := GetSessionUser(c)
				require.True(t, ok)

				return c.JSON(http.StatusOK, map[string]string{"id": u.ID})
			}, m.RequireUser)
			e.GET("/admin", func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"ok": "yes"})
			}, m.RequireAdmin)

			rec, out := serve(t, e, tt.path)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError == "" {
				assert.Nil(t, out.Error)

				return
			}
			require.NotNil(t, out.Error)
			assert.Equal(t, tt.wantError, out.Error.Code)
		})
	}
}
