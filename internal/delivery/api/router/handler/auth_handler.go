package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	AdminUC   usecase.AdminUsecase
	Logger    *slog.Logger
}

// AuthHandler serves signup, login and password recovery for customers and admins.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	adminUC   usecase.AdminUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		adminUC:   params.AdminUC,
		logger:    params.Logger,
	}
}

// SignupRequest represents the request body for customer signup
type SignupRequest struct {
	Login       string `json:"login" validate:"notblank"`
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
	NationalID  string `json:"cpf"`
	Address     string `json:"address"`
	PostalCode  string `json:"cep"`
	HouseNumber string `json:"houseNumber"`
	Phone       string `json:"phone"`
	Password    string `json:"password" validate:"notblank"`
}

// LoginRequest is not validated; blank credentials fail like wrong ones.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type AdminCredentialsRequest struct {
	Login    string `json:"login" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type ForgotPasswordRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Phone string `json:"phone" validate:"notblank"`
}

type ResetPasswordRequest struct {
	UserID      string `json:"userId" validate:"required"`
	NewPassword string `json:"newPassword" validate:"notblank"`
}

// Session reports the active session.
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := h.accountUC.CurrentSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		Kind: session.Kind.String(),
		User: newUserResponse(session.User),
	})
}

// Signup registers a customer without logging in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Preencha os campos obrigatórios", err.Error())
	}

	user, err := h.accountUC.SignupUser(c.Request().Context(), &usecase.SignupUserInput{
		Login:       req.Login,
		Name:        req.Name,
		Email:       req.Email,
		NationalID:  req.NationalID,
		Address:     req.Address,
		PostalCode:  req.PostalCode,
		HouseNumber: req.HouseNumber,
		Phone:       req.Phone,
		Password:    req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login starts a customer session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de login inválidos")
	}

	user, err := h.accountUC.LoginUser(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.accountUC.LogoutUser(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ForgotPassword returns the id of the user matching name and phone.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Informe nome e telefone")
	}

	userID, err := h.accountUC.VerifyIdentity(c.Request().Context(), req.Name, req.Phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"userId": userID})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A nova senha não pode ser vazia")
	}

	_, err := h.accountUC.UpdateUser(c.Request().Context(), req.UserID, usecase.SelfServiceReset{NewPassword: req.NewPassword})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminSignup registers another administrator.
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req AdminCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Informe login e senha")
	}

	admin, err := h.adminUC.SignupAdmin(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": admin.ID, "login": admin.Login})
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}

	if err := h.adminUC.LoginAdmin(c.Request().Context(), req.Login, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) AdminLogout(c echo.Context) error {
	if err := h.adminUC.LogoutAdmin(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
