package cart

import (
	"storefront/internal/catalog"

	"github.com/shopspring/decimal"
)

// LineItem is one product in the cart. ID is unique within a cart.
type LineItem struct {
	ID        catalog.ProductID `json:"id"`
	Name      string            `json:"name"`
	UnitPrice decimal.Decimal   `json:"price"`
	Image     string            `json:"image"`
	Quantity  int               `json:"quantity"`
}

// Total is UnitPrice × Quantity.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// State is the whole cart. An empty AppliedCouponCode means no coupon; when
// it is set DiscountRate and CouponDescription mirror the catalog entry.
type State struct {
	Items             []LineItem      `json:"items"`
	AppliedCouponCode string          `json:"applied_coupon,omitempty"`
	DiscountRate      decimal.Decimal `json:"discount_rate"`
	CouponDescription string          `json:"coupon_description,omitempty"`
}

func (s State) HasCoupon() bool { return s.AppliedCouponCode != "" }

func (s State) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.Total())
	}
	return sum
}

func (s State) DiscountAmount() decimal.Decimal {
	return s.Subtotal().Mul(s.DiscountRate)
}

func (s State) Total() decimal.Decimal {
	return s.Subtotal().Sub(s.DiscountAmount())
}

func (s State) ItemCount() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

func (s State) Find(id catalog.ProductID) (LineItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// Clone deep-copies the item slice so the copy shares nothing mutable.
func (s State) Clone() State {
	out := s
	if s.Items != nil {
		out.Items = make([]LineItem, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	ItemCount      int             `json:"item_count"`
}

func (s State) Totals() Totals {
	return Totals{
		Subtotal:       s.Subtotal(),
		DiscountAmount: s.DiscountAmount(),
		Total:          s.Total(),
		ItemCount:      s.ItemCount(),
	}
}

// ApplyResult reports the outcome of a coupon attempt. A miss is a result,
// not an error.
type ApplyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
