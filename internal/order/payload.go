package order

import (
	"storefront/internal/checkout"

	"github.com/shopspring/decimal"
)

const submittedStatus = "Pending"

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// BuildPayload maps an order snapshot to the order-intake wire format.
func BuildPayload(o checkout.Order) Payload {
	items := make([]PayloadItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, PayloadItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			Name:      it.Name,
		})
	}

	return Payload{
		Customer: Customer{
			Name:    o.DeliveryInfo.FullName(),
			Email:   o.ContactInfo.Email,
			Phone:   o.ContactInfo.Phone,
			Address: checkout.JoinedAddress(o.DeliveryInfo),
		},
		Order: OrderMeta{
			OrderNumber:       o.OrderNumber,
			Total:             money(o.Total),
			Subtotal:          money(o.Subtotal),
			ShippingCost:      money(o.ShippingCost),
			PaymentMethod:     o.PaymentMethod.Label(),
			ShippingMethod:    o.ShippingMethod.Label(),
			Status:            submittedStatus,
			EstimatedDelivery: o.EstimatedDelivery,
		},
		Items: items,
	}
}
