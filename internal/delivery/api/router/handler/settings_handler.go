package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/domain/entity"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// SettingsPatchRequest leaves absent fields unchanged.
type SettingsPatchRequest struct {
	Address    *string `json:"address"`
	PostalCode *string `json:"cep"`
	Number     *string `json:"number"`
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings))
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req SettingsPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados da loja inválidos")
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), entity.StoreSettingsPatch{
		Address:    req.Address,
		PostalCode: req.PostalCode,
		Number:     req.Number,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSettingsResponse(settings))
}
