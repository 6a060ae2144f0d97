package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// OrderItem is a cart line: a product snapshot and a quantity of at least one.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Subtotal is price times quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the active order being built. No line ever rests at quantity zero or below.
type Cart struct {
	lines []OrderItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart.
func (c *Cart) Add(product Product) {
	if idx := c.indexOf(product.ID); idx >= 0 {
		c.lines[idx].Quantity++

		return
	}

	c.lines = append(c.lines, OrderItem{Product: product, Quantity: 1})
}

// Remove deletes the line for productID. It reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}

	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)

	return true
}

// ChangeQuantity adds delta to the line quantity and drops the line when it reaches zero or less.
// A positive delta saturates at math.MaxInt instead of wrapping.
func (c *Cart) ChangeQuantity(productID string, delta int) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}

	current := c.lines[idx].Quantity
	next := current + delta
	if delta > 0 && current > math.MaxInt-delta {
		next = math.MaxInt
	}
	if next <= 0 {
		return c.Remove(productID)
	}
	c.lines[idx].Quantity = next

	return true
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, len(c.lines))
	copy(items, c.lines)

	return items
}

// Total is the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.lines = nil
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return NewCart()
	}

	return &Cart{lines: c.Items()}
}

func (c *Cart) indexOf(productID string) int {
	for idx, line := range c.lines {
		if line.Product.ID == productID {
			return idx
		}
	}

	return -1
}
