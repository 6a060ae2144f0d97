// Package notification delivers order confirmations to customers and the kitchen.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"menumaster/config"
	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/service"
	"menumaster/internal/util"

	"go.uber.org/fx"
)

// OrderNotifierParams holds dependencies for the order notifier, injected by Fx
type OrderNotifierParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type orderNotifier struct {
	storeName string
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderNotifier logs the simulated customer messages and publishes the order event.
func NewOrderNotifier(params OrderNotifierParams) service.OrderNotifier {
	return &orderNotifier{
		storeName: params.Config.StoreName(),
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (n *orderNotifier) OrderConfirmed(ctx context.Context, order *entity.CompletedOrder, customer *entity.User) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger).With(slog.String("order_id", order.ID))

	if customer != nil && customer.Email != "" {
		logger.Info("Simulated order confirmation email",
			slog.String("to", customer.Email),
			slog.String("subject", n.emailSubject(order)),
			slog.String("body", n.emailBody(order, customer)),
		)
	} else {
		logger.Warn("Order confirmation email skipped: no logged-in user with email")
	}

	if customer != nil && customer.Phone != "" {
		logger.Info("Simulated order confirmation SMS",
			slog.String("to", customer.Phone),
			slog.String("message", n.smsMessage(order, customer)),
		)
	} else {
		logger.Warn("Order confirmation SMS skipped: no logged-in user with phone")
	}

	if err := n.publisher.PublishOrderEvent(ctx, newOrderEvent(ctx, order)); err != nil {
		logger.Error("Failed to publish order event", slog.Any("error", err))
	}
}

func (n *orderNotifier) emailSubject(order *entity.CompletedOrder) string {
	return fmt.Sprintf("Confirmação do seu pedido na %s (#%s)", n.storeName, order.ShortCode())
}

func (n *orderNotifier) emailBody(order *entity.CompletedOrder, customer *entity.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s,\n\nObrigado pelo seu pedido!\n\nDetalhes do Pedido:\n", customer.Name)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s: %s\n", item.Quantity, item.Name, util.FormatBRL(item.Subtotal()))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n\nAgradecemos a sua preferência!\n%s", util.FormatBRL(order.Total), n.storeName)

	return b.String()
}

func (n *orderNotifier) smsMessage(order *entity.CompletedOrder, customer *entity.User) string {
	return fmt.Sprintf("Olá %s, seu pedido na %s (#%s) no valor de %s foi confirmado! Obrigado!",
		customer.Name, n.storeName, order.ShortCode(), util.FormatBRL(order.Total))
}

func newOrderEvent(ctx context.Context, order *entity.CompletedOrder) *service.OrderEvent {
	items := make([]service.OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.OrderEventItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}

	return &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   order.ID,
		ShortCode: order.ShortCode(),
		UserID:    order.UserID,
		Total:     order.Total.StringFixed(2),
		Items:     items,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
	}
}
