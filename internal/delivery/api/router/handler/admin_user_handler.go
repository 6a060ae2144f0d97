package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminUserHandlerParams holds dependencies for AdminUserHandler, injected by Fx.
type AdminUserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AdminUserHandler serves customer management for administrators
type AdminUserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAdminUserHandler is the constructor for AdminUserHandler
func NewAdminUserHandler(params AdminUserHandlerParams) *AdminUserHandler {
	return &AdminUserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AdminUpdateUserRequest edits a customer. A non-empty NewPassword resets the password.
type AdminUpdateUserRequest struct {
	ProfileRequest

	NewPassword string `json:"newPassword"`
}

func (h *AdminUserHandler) ListUsers(c echo.Context) error {
	users, err := h.accountUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

func (h *AdminUserHandler) GetUser(c echo.Context) error {
	user, err := h.accountUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *AdminUserHandler) UpdateUser(c echo.Context) error {
	var req AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do usuário inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Preencha os campos obrigatórios", err.Error())
	}

	profile := req.toInput()
	var update usecase.UserUpdate = usecase.ProfileUpdate{Profile: profile}
	if req.NewPassword != "" {
		update = usecase.AdminPasswordReset{Profile: &profile, NewPassword: req.NewPassword}
	}

	updated, err := h.accountUC.UpdateUser(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(updated))
}

func (h *AdminUserHandler) DeleteUser(c echo.Context) error {
	if err := h.accountUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
