package coupon

import (
	"sort"

	"github.com/shopspring/decimal"
)

var catalog = map[string]Coupon{
	"SAVE10": {
		Code:         "SAVE10",
		DiscountRate: decimal.RequireFromString("0.10"),
		Description:  "10% off your order",
		Kind:         KindPercentage,
	},
	"SAVE20": {
		Code:         "SAVE20",
		DiscountRate: decimal.RequireFromString("0.20"),
		Description:  "20% off your order",
		Kind:         KindPercentage,
	},
	"WELCOME5": {
		Code:         "WELCOME5",
		DiscountRate: decimal.RequireFromString("0.05"),
		Description:  "5% off for new customers",
		Kind:         KindPercentage,
	},
	"FREESHIP": {
		Code:         "FREESHIP",
		DiscountRate: decimal.Zero,
		Description:  "Free shipping",
		Kind:         KindShipping,
	},
}

// Lookup finds a coupon by code. The code is normalized first, so lookups
// are case-insensitive and ignore surrounding whitespace.
func Lookup(code string) (Coupon, bool) {
	c, ok := catalog[Normalize(code)]
	return c, ok
}

// All returns the catalog sorted by code.
func All() []Coupon {
	out := make([]Coupon, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
