package coupon

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindShipping   Kind = "shipping"
)

type Coupon struct {
	Code         string          `json:"code"`
	DiscountRate decimal.Decimal `json:"discount"`
	Description  string          `json:"description"`
	Kind         Kind            `json:"type"`
}

// Normalize uppercases and trims a user supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
