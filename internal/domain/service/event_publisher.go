package service

import (
	"context"
)

// OrderEventItem is one line of a confirmed order
type OrderEventItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderEvent represents a confirmed order handed to the notify worker
type OrderEvent struct {
	RequestID string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string           `json:"order_id"`
	ShortCode string           `json:"short_code"`
	UserID    string           `json:"user_id,omitempty"`
	Total     string           `json:"total"`
	Items     []OrderEventItem `json:"items"`
	CreatedAt string           `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
