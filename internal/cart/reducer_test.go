package cart

import (
	"testing"

	"storefront/internal/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id string, price string, qty int) LineItem {
	return LineItem{ID: catalogID(id), Name: "Item " + id, UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestReduce_AddItem(t *testing.T) {
	t.Run("AppendsNewItem", func(t *testing.T) {
		s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})
		s = Reduce(s, AddItem{Item: item("2", "5", 1)})

		assert.Len(t, s.Items, 2)
		assert.Equal(t, catalogID("1"), s.Items[0].ID)
		assert.Equal(t, catalogID("2"), s.Items[1].ID)
	})

	t.Run("MergesSameID", func(t *testing.T) {
		s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})
		s = Reduce(s, AddItem{Item: item("1", "10", 3)})

		assert.Len(t, s.Items, 1)
		assert.Equal(t, 5, s.Items[0].Quantity)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		before := Reduce(State{}, AddItem{Item: item("1", "10", 1)})
		_ = Reduce(before, AddItem{Item: item("1", "10", 4)})

		assert.Equal(t, 1, before.Items[0].Quantity)
	})
}

func TestReduce_UpdateQuantity(t *testing.T) {
	s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})

	assert.Equal(t, 7, Reduce(s, UpdateQuantity{ID: "1", Quantity: 7}).Items[0].Quantity)
	assert.Equal(t, 2, Reduce(s, UpdateQuantity{ID: "1", Quantity: 0}).Items[0].Quantity)
	assert.Equal(t, 2, Reduce(s, UpdateQuantity{ID: "1", Quantity: -1}).Items[0].Quantity)
	assert.Equal(t, s, Reduce(s, UpdateQuantity{ID: "missing", Quantity: 3}))
}

func TestReduce_RemoveItem(t *testing.T) {
	s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})
	s = Reduce(s, AddItem{Item: item("2", "5", 1)})

	s = Reduce(s, RemoveItem{ID: "1"})
	assert.Len(t, s.Items, 1)
	assert.Equal(t, catalogID("2"), s.Items[0].ID)

	// absent id is not an error
	s = Reduce(s, RemoveItem{ID: "nope"})
	assert.Len(t, s.Items, 1)
}

func TestReduce_ClearDropsCoupon(t *testing.T) {
	save10, _ := coupon.Lookup("SAVE10")
	s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})
	s = Reduce(s, ApplyCoupon{Coupon: save10})

	s = Reduce(s, Clear{})
	assert.Empty(t, s.Items)
	assert.False(t, s.HasCoupon())
	assert.True(t, s.DiscountRate.IsZero())
	assert.Empty(t, s.CouponDescription)
}

func TestReduce_Coupon(t *testing.T) {
	save20, _ := coupon.Lookup("SAVE20")
	s := Reduce(State{}, ApplyCoupon{Coupon: save20})

	assert.Equal(t, "SAVE20", s.AppliedCouponCode)
	assert.Equal(t, "20% off your order", s.CouponDescription)
	assert.True(t, s.DiscountRate.Equal(decimal.RequireFromString("0.2")))

	s = Reduce(s, RemoveCoupon{})
	assert.False(t, s.HasCoupon())
	assert.Equal(t, s, Reduce(s, RemoveCoupon{}))
}

func TestTotals(t *testing.T) {
	save10, _ := coupon.Lookup("SAVE10")
	s := Reduce(State{}, AddItem{Item: item("1", "10", 2)})
	s = Reduce(s, AddItem{Item: item("2", "5", 1)})

	assert.True(t, s.Subtotal().Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, 3, s.ItemCount())

	s = Reduce(s, ApplyCoupon{Coupon: save10})
	totals := s.Totals()
	assert.True(t, totals.DiscountAmount.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("22.50")))
}
