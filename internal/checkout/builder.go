package checkout

import (
	"fmt"
	"time"

	"storefront/internal/cart"
	"storefront/internal/utils"

	"github.com/shopspring/decimal"
)

// OrderInput is the cart side of an order. A zero ShippingMethod means
// international shipping; an empty AppliedCoupon means none.
type OrderInput struct {
	LineItems      []cart.LineItem
	CartSubtotal   decimal.Decimal
	AppliedCoupon  string
	DiscountAmount decimal.Decimal
	ShippingMethod ShippingMethod
}

// buildOrder snapshots the checkout state and cart values into a new order.
func buildOrder(s State, in OrderInput, now time.Time, orderNumber string) (Order, error) {
	shipping := in.ShippingMethod
	if shipping == "" {
		shipping = ShippingInternational
	}
	if !shipping.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidShippingMethod, shipping)
	}
	shippingCost := shipping.Cost()

	items := make([]OrderItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		items = append(items, OrderItem{
			ID:       li.ID,
			Name:     li.Name,
			Price:    li.UnitPrice,
			Quantity: li.Quantity,
			Image:    li.Image,
			Total:    li.Total(),
		})
	}

	var billing *DeliveryInfo
	if !s.BillingAddressSameAsDelivery && s.BillingAddress != nil {
		b := *s.BillingAddress
		billing = &b
	}

	var applied *string
	if in.AppliedCoupon != "" {
		c := in.AppliedCoupon
		applied = &c
	}

	return Order{
		OrderNumber:       orderNumber,
		OrderDate:         now.Format("January 2, 2006"),
		PlacedAt:          now,
		EstimatedDelivery: EstimateDelivery(now),
		Items:             items,
		ContactInfo:       s.ContactInfo,
		DeliveryInfo:      s.DeliveryInfo,
		PaymentMethod:     s.PaymentMethod,
		ShippingMethod:    shipping,
		BillingAddress:    billing,
		Subtotal:          in.CartSubtotal,
		AppliedCoupon:     applied,
		DiscountAmount:    in.DiscountAmount,
		ShippingCost:      shippingCost,
		Total:             in.CartSubtotal.Sub(in.DiscountAmount).Add(shippingCost),
		Status:            StatusConfirmed,
		TrackingSteps:     initialTracking(now),
	}, nil
}

// EstimateDelivery renders the window from the 3rd to the 5th business day
// after now, e.g. "October 19-October 21, 2026".
func EstimateDelivery(now time.Time) string {
	start := utils.AddBusinessDays(now, 3)
	end := utils.AddBusinessDays(now, 5)
	return fmt.Sprintf("%s-%s, %d", start.Format("January 2"), end.Format("January 2"), end.Year())
}
