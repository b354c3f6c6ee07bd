package checkout

// Action is a tagged checkout mutation consumed by Reduce.
type Action interface {
	actionName() string
}

type SetContactInfo struct{ Patch ContactPatch }

type SetDeliveryInfo struct{ Patch DeliveryPatch }

type SetPaymentMethod struct{ Method PaymentMethod }

type SetBillingAddressSame struct{ Same bool }

type SetBillingAddress struct{ Address *DeliveryInfo }

type SetCurrentOrder struct{ Order Order }

// AddToOrderHistory moves the current order to the front of the history.
type AddToOrderHistory struct{}

type ClearCheckoutData struct{}

// ReplaceOrder swaps in an updated copy of an existing order, matched by
// order number, wherever it lives.
type ReplaceOrder struct{ Order Order }

func (SetContactInfo) actionName() string        { return "SET_CONTACT_INFO" }
func (SetDeliveryInfo) actionName() string       { return "SET_DELIVERY_INFO" }
func (SetPaymentMethod) actionName() string      { return "SET_PAYMENT_METHOD" }
func (SetBillingAddressSame) actionName() string { return "SET_BILLING_ADDRESS_SAME" }
func (SetBillingAddress) actionName() string     { return "SET_BILLING_ADDRESS" }
func (SetCurrentOrder) actionName() string       { return "SET_CURRENT_ORDER" }
func (AddToOrderHistory) actionName() string     { return "ADD_TO_ORDER_HISTORY" }
func (ClearCheckoutData) actionName() string     { return "CLEAR_CHECKOUT_DATA" }
func (ReplaceOrder) actionName() string          { return "REPLACE_ORDER" }
