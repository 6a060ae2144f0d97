package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the active cart and checkout
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(view))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Produto inválido")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Produto inválido", err.Error())
	}

	view, err := h.cartUC.AddToCart(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(view))
}

func (h *CartHandler) ChangeQuantity(c echo.Context) error {
	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Quantidade inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Quantidade inválida", err.Error())
	}

	view, err := h.cartUC.ChangeQuantity(c.Request().Context(), c.Param("productId"), req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(view))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.cartUC.RemoveFromCart(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(view))
}

// Checkout answers 204 when the cart was empty.
func (h *CartHandler) Checkout(c echo.Context) error {
	order, err := h.cartUC.FinalizeOrder(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if order == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}
