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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves completed orders and their receipts
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ReceiptQR renders the order receipt as a PNG
func (h *OrderHandler) ReceiptQR(c echo.Context) error {
	png, err := h.orderUC.ReceiptQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type VerifyReceiptRequest struct {
	QRData string `json:"qrData" validate:"notblank"`
}

// VerifyReceipt looks up the order behind a scanned receipt
func (h *OrderHandler) VerifyReceipt(c echo.Context) error {
	var req VerifyReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Dados inválidos", err.Error())
	}

	order, err := h.orderUC.VerifyReceipt(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// MyOrders lists the logged-in user's orders, newest first
func (h *OrderHandler) MyOrders(c echo.Context) error {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		return response.NoSession(c)
	}

	orders, err := h.orderUC.OrderHistory(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}
