package cart

import "github.com/shopspring/decimal"

// Reduce returns the state after applying a. The input state is never
// modified.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case AddItem:
		for i := range next.Items {
			if next.Items[i].ID == a.Item.ID {
				next.Items[i].Quantity += a.Item.Quantity
				return next
			}
		}
		next.Items = append(next.Items, a.Item)

	case UpdateQuantity:
		if a.Quantity < 1 {
			return next
		}
		for i := range next.Items {
			if next.Items[i].ID == a.ID {
				next.Items[i].Quantity = a.Quantity
			}
		}

	case RemoveItem:
		kept := next.Items[:0]
		for _, it := range next.Items {
			if it.ID != a.ID {
				kept = append(kept, it)
			}
		}
		next.Items = kept

	case Clear:
		next = State{Items: []LineItem{}, DiscountRate: decimal.Zero}

	case ApplyCoupon:
		next.AppliedCouponCode = a.Coupon.Code
		next.DiscountRate = a.Coupon.DiscountRate
		next.CouponDescription = a.Coupon.Description

	case RemoveCoupon:
		next.AppliedCouponCode = ""
		next.DiscountRate = decimal.Zero
		next.CouponDescription = ""

	case Restore:
		next = a.State.Clone()
	}

	return next
}
