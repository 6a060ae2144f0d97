package entity

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price string) Product {
	return Product{
		ID:       id,
		Name:     "Produto " + id,
		Price:    decimal.RequireFromString(price),
		Category: "Pizzas",
	}
}

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	burger := testProduct("1", "25.50")

	cart.Add(burger)
	cart.Add(burger)
	cart.Add(testProduct("2", "42.00"))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, decimal.RequireFromString("93.00").Equal(cart.Total()))
}

func TestCart_ChangeQuantityRemovesAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "10"))

	assert.True(t, cart.ChangeQuantity("1", 2))
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	assert.True(t, cart.ChangeQuantity("1", -5))
	assert.True(t, cart.IsEmpty())

	assert.False(t, cart.ChangeQuantity("missing", 1))
}

func TestCart_RemoveIsNoopForUnknownProduct(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "10"))

	assert.False(t, cart.Remove("2"))
	assert.True(t, cart.Remove("1"))
	assert.True(t, cart.IsEmpty())
}

func TestCart_NeverHoldsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	ops := []struct {
		add    string
		change string
		delta  int
		remove string
	}{
		{add: "a"}, {add: "b"}, {change: "a", delta: -1}, {add: "a"},
		{change: "b", delta: 3}, {change: "b", delta: -2}, {remove: "a"},
		{change: "b", delta: -10}, {add: "c"}, {change: "c", delta: 0},
	}

	for _, op := range ops {
		switch {
		case op.add != "":
			cart.Add(testProduct(op.add, "1"))
		case op.change != "":
			cart.ChangeQuantity(op.change, op.delta)
		case op.remove != "":
			cart.Remove(op.remove)
		}

		for _, item := range cart.Items() {
			assert.Positive(t, item.Quantity)
		}
	}
}

func TestCart_CloneIsIndependent(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "10"))

	cloned := cart.Clone()
	cloned.Add(testProduct("1", "10"))
	cloned.Add(testProduct("2", "5"))

	assert.Equal(t, 1, cart.Items()[0].Quantity)
	assert.Len(t, cart.Items(), 1)
	assert.Len(t, cloned.Items(), 2)
}

func TestCart_ChangeQuantityHugeDeltaSaturates(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "6.00"))

	require.True(t, cart.ChangeQuantity("1", math.MaxInt))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, math.MaxInt, items[0].Quantity)

	require.True(t, cart.ChangeQuantity("1", 1))
	assert.Equal(t, math.MaxInt, cart.Items()[0].Quantity)

	require.True(t, cart.ChangeQuantity("1", math.MinInt))
	assert.True(t, cart.IsEmpty())
}
