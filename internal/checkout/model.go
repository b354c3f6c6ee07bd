package checkout

import (
	"time"

	"storefront/internal/catalog"

	"github.com/shopspring/decimal"
)

type ContactInfo struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SubscribeToNews bool   `json:"subscribe_to_news"`
}

type DeliveryInfo struct {
	Country         string `json:"country"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Address         string `json:"address"`
	Apartment       string `json:"apartment,omitempty"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code,omitempty"`
	SaveForNextTime bool   `json:"save_for_next_time"`
}

// FullName joins first and last name with a single space.
func (d DeliveryInfo) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// ContactPatch and DeliveryPatch carry partial updates; nil fields are left
// untouched.
type ContactPatch struct {
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	SubscribeToNews *bool   `json:"subscribe_to_news"`
}

type DeliveryPatch struct {
	Country         *string `json:"country"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Address         *string `json:"address"`
	Apartment       *string `json:"apartment"`
	City            *string `json:"city"`
	PostalCode      *string `json:"postal_code"`
	SaveForNextTime *bool   `json:"save_for_next_time"`
}

type PaymentMethod string

const PaymentCashOnDelivery PaymentMethod = "cod"

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCashOnDelivery:
		return "Cash on Delivery (COD)"
	}
	return string(m)
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery
}

type ShippingMethod string

const (
	ShippingInternational ShippingMethod = "international"
	ShippingFree          ShippingMethod = "free"
)

var flatShippingRate = decimal.RequireFromString("20.00")

func (m ShippingMethod) Valid() bool {
	return m == ShippingInternational || m == ShippingFree
}

// Cost is 0.00 for free shipping and a flat 20.00 for anything else.
func (m ShippingMethod) Cost() decimal.Decimal {
	if m == ShippingFree {
		return decimal.Zero
	}
	return flatShippingRate
}

func (m ShippingMethod) Label() string {
	if m == ShippingFree {
		return "Free Shipping"
	}
	return "International Shipping"
}

type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
	StatusPending   OrderStatus = "pending"
)

type OrderItem struct {
	ID       catalog.ProductID `json:"id"`
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	Quantity int               `json:"quantity"`
	Image    string            `json:"image"`
	Total    decimal.Decimal   `json:"total"`
}

type TrackingStep struct {
	Step      string     `json:"step"`
	Completed bool       `json:"completed"`
	Date      *time.Time `json:"date"`
}

// Order is a snapshot taken at checkout. Only its tracking steps change
// after creation, and only forward.
type Order struct {
	OrderNumber       string          `json:"order_number"`
	OrderDate         string          `json:"order_date"`
	PlacedAt          time.Time       `json:"placed_at"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	Items             []OrderItem     `json:"items"`
	ContactInfo       ContactInfo     `json:"contact_info"`
	DeliveryInfo      DeliveryInfo    `json:"delivery_info"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	ShippingMethod    ShippingMethod  `json:"shipping_method"`
	BillingAddress    *DeliveryInfo   `json:"billing_address"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	AppliedCoupon     *string         `json:"applied_coupon"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	TrackingSteps     []TrackingStep  `json:"tracking_steps"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Clone deep-copies every slice and pointer the order holds.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderItem, len(o.Items))
		copy(out.Items, o.Items)
	}
	if o.BillingAddress != nil {
		b := *o.BillingAddress
		out.BillingAddress = &b
	}
	if o.AppliedCoupon != nil {
		c := *o.AppliedCoupon
		out.AppliedCoupon = &c
	}
	if o.TrackingSteps != nil {
		out.TrackingSteps = make([]TrackingStep, len(o.TrackingSteps))
		for i, s := range o.TrackingSteps {
			if s.Date != nil {
				d := *s.Date
				s.Date = &d
			}
			out.TrackingSteps[i] = s
		}
	}
	return out
}

type State struct {
	ContactInfo                  ContactInfo   `json:"contact_info"`
	DeliveryInfo                 DeliveryInfo  `json:"delivery_info"`
	PaymentMethod                PaymentMethod `json:"payment_method"`
	BillingAddressSameAsDelivery bool          `json:"billing_address_same_as_delivery"`
	BillingAddress               *DeliveryInfo `json:"billing_address"`
	CurrentOrder                 *Order        `json:"current_order"`
	OrderHistory                 []Order       `json:"order_history"`
}

const DefaultCountry = "Pakistan"

func initialState() State {
	return State{
		DeliveryInfo:                 DeliveryInfo{Country: DefaultCountry},
		PaymentMethod:                PaymentCashOnDelivery,
		BillingAddressSameAsDelivery: true,
		OrderHistory:                 []Order{},
	}
}

func (s State) Clone() State {
	out := s
	if s.BillingAddress != nil {
		b := *s.BillingAddress
		out.BillingAddress = &b
	}
	if s.CurrentOrder != nil {
		o := s.CurrentOrder.Clone()
		out.CurrentOrder = &o
	}
	if s.OrderHistory != nil {
		out.OrderHistory = make([]Order, len(s.OrderHistory))
		for i, o := range s.OrderHistory {
			out.OrderHistory[i] = o.Clone()
		}
	}
	return out
}
