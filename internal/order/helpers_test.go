package order

import (
	"context"
	"time"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SubmitOrder(ctx context.Context, p Payload) (*Receipt, error) {
	args := m.Called(ctx, p)
	if r := args.Get(0); r != nil {
		return r.(*Receipt), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCart struct {
	mock.Mock
}

func (m *MockCart) Clear() cart.State {
	m.Called()
	return cart.State{}
}

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) CompleteOrderNumber(number string) bool {
	return m.Called(number).Bool(0)
}

func sampleOrder(number string) checkout.Order {
	return checkout.Order{
		OrderNumber:       number,
		OrderDate:         "October 14, 2026",
		PlacedAt:          time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
		EstimatedDelivery: "October 19-October 21, 2026",
		Items: []checkout.OrderItem{
			{
				ID:       catalog.ProductID("3"),
				Name:     "Linen Shirt",
				Price:    decimal.RequireFromString("25.50"),
				Quantity: 2,
				Total:    decimal.RequireFromString("51.00"),
			},
		},
		ContactInfo: checkout.ContactInfo{Email: "ayesha@example.com", Phone: "03001234567"},
		DeliveryInfo: checkout.DeliveryInfo{
			Country:   "Pakistan",
			FirstName: "Ayesha",
			LastName:  "Khan",
			Address:   "12 Mall Road",
			City:      "Lahore",
		},
		PaymentMethod:  checkout.PaymentCashOnDelivery,
		ShippingMethod: checkout.ShippingInternational,
		Subtotal:       decimal.RequireFromString("51.00"),
		AppliedCoupon:  utils.StrPtr("SAVE10"),
		DiscountAmount: decimal.RequireFromString("5.10"),
		ShippingCost:   decimal.RequireFromString("20.00"),
		Total:          decimal.RequireFromString("65.90"),
		Status:         checkout.StatusConfirmed,
	}
}
