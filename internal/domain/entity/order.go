package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const shortCodeLength = 6

// CompletedOrderItem is a cart line frozen at checkout time.
type CompletedOrderItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal // Price at the time of order; never updated afterwards.
	Quantity  int
}

// Subtotal is price times quantity.
func (i CompletedOrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CompletedOrder is an immutable record of a checked-out cart.
type CompletedOrder struct {
	ID        string
	CreatedAt time.Time
	Items     []CompletedOrderItem
	Total     decimal.Decimal // Always the sum of item subtotals.
	UserID    string          // Empty for anonymous checkouts. May dangle after the user is deleted.
}

// NewCompletedOrder freezes the cart lines into an order and computes its total.
func NewCompletedOrder(id string, createdAt time.Time, lines []OrderItem, userID string) *CompletedOrder {
	items := make([]CompletedOrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		item := CompletedOrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}

	return &CompletedOrder{
		ID:        id,
		CreatedAt: createdAt,
		Items:     items,
		Total:     total,
		UserID:    userID,
	}
}

// ItemsTotal recomputes the total from the frozen items.
func (o *CompletedOrder) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ShortCode is the customer-facing order number, the first characters after the id prefix.
func (o *CompletedOrder) ShortCode() string {
	code := o.ID
	if idx := strings.IndexByte(code, '_'); idx >= 0 {
		code = code[idx+1:]
	}
	if len(code) > shortCodeLength {
		code = code[:shortCodeLength]
	}

	return strings.ToUpper(code)
}
