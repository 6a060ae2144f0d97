package usecase

import (
	"context"

	"menumaster/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartView is a snapshot of the active cart.
type CartView struct {
	Items []entity.OrderItem
	Total decimal.Decimal
}

// CartUsecase defines the active cart and checkout.
type CartUsecase interface {
	GetCart(ctx context.Context) (*CartView, error)
	AddToCart(ctx context.Context, productID string) (*CartView, error)
	RemoveFromCart(ctx context.Context, productID string) (*CartView, error)
	ChangeQuantity(ctx context.Context, productID string, delta int) (*CartView, error)
	// FinalizeOrder returns nil without error when the cart is empty.
	FinalizeOrder(ctx context.Context) (*entity.CompletedOrder, error)
}
