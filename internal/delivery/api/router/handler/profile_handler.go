package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/middleware"
	"menumaster/internal/delivery/api/response"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the logged-in customer's own account
type ProfileHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// ChangePasswordRequest edits the profile and the password together, as the account page does.
type ChangePasswordRequest struct {
	ProfileRequest

	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"notblank"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		return response.NoSession(c)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		return response.NoSession(c)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do perfil inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Preencha os campos obrigatórios", err.Error())
	}

	updated, err := h.accountUC.UpdateUser(c.Request().Context(), user.ID, usecase.ProfileUpdate{Profile: req.toInput()})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}

func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		return response.NoSession(c)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Preencha os campos obrigatórios", err.Error())
	}

	updated, err := h.accountUC.UpdateUser(c.Request().Context(), user.ID, usecase.PasswordChange{
		Profile:         req.toInput(),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}
