package order

import (
	"encoding/json"

	"storefront/internal/catalog"
)

// Payload is the body sent to POST /orders.
type Payload struct {
	Customer Customer      `json:"customer"`
	Order    OrderMeta     `json:"order"`
	Items    []PayloadItem `json:"items"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderMeta struct {
	OrderNumber       string  `json:"order_number"`
	Total             float64 `json:"total"`
	Subtotal          float64 `json:"subtotal"`
	ShippingCost      float64 `json:"shipping_cost"`
	PaymentMethod     string  `json:"payment_method"`
	ShippingMethod    string  `json:"shipping_method"`
	Status            string  `json:"status"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

type PayloadItem struct {
	ProductID catalog.ProductID `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Price     float64           `json:"price"`
	Name      string            `json:"name"`
}

// Receipt is the order-intake service's answer to a successful submission.
type Receipt struct {
	ID  string          `json:"id,omitempty"`
	Raw json.RawMessage `json:"raw,omitempty"`
}

// SubmitState is the request state of one order's submission.
type SubmitState int

const (
	StateIdle SubmitState = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s SubmitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

func (s SubmitState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is what the confirmation view renders.
type Status struct {
	OrderNumber string      `json:"order_number"`
	State       SubmitState `json:"state"`
	Saved       bool        `json:"saved"`
	Bypassed    bool        `json:"bypassed"`
	Attempts    int         `json:"attempts"`
	Error       string      `json:"error,omitempty"`
	Receipt     *Receipt    `json:"receipt,omitempty"`
}
