package coupon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("ExactCode", func(t *testing.T) {
		c, ok := Lookup("SAVE10")
		assert.True(t, ok)
		assert.Equal(t, "SAVE10", c.Code)
		assert.True(t, c.DiscountRate.Equal(decimal.RequireFromString("0.1")))
		assert.Equal(t, KindPercentage, c.Kind)
	})

	t.Run("CaseInsensitiveAndTrimmed", func(t *testing.T) {
		c, ok := Lookup("  save20 ")
		assert.True(t, ok)
		assert.Equal(t, "SAVE20", c.Code)
	})

	t.Run("ShippingCoupon", func(t *testing.T) {
		c, ok := Lookup("freeship")
		assert.True(t, ok)
		assert.Equal(t, KindShipping, c.Kind)
		assert.True(t, c.DiscountRate.IsZero())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, ok := Lookup("NOPE")
		assert.False(t, ok)
	})
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 4)
	assert.Equal(t, "FREESHIP", all[0].Code)
	assert.Equal(t, "WELCOME5", all[3].Code)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "WELCOME5", Normalize(" welcome5\t"))
	assert.Equal(t, "", Normalize("   "))
}
