package service

import (
	"context"

	"menumaster/internal/domain/entity"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// OrderNotifier fires the post-checkout side effects. It never fails the checkout.
type OrderNotifier interface {
	// OrderConfirmed is called after an order was persisted. customer is nil for anonymous checkouts.
	OrderConfirmed(ctx context.Context, order *entity.CompletedOrder, customer *entity.User)
}
