package transport

import (
	"errors"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/coupon"
	"storefront/internal/logger"
	"storefront/internal/order"
	"storefront/internal/utils"

	"go.uber.org/zap"
)

type checkoutResponse struct {
	Checkout         checkout.State          `json:"checkout"`
	IsValid          bool                    `json:"is_valid"`
	FormattedAddress []string                `json:"formatted_address"`
	ShippingMethod   checkout.ShippingMethod `json:"shipping_method"`
}

func (h *Handler) checkoutView(st checkout.State) checkoutResponse {
	return checkoutResponse{
		Checkout:         st,
		IsValid:          checkout.IsCheckoutValid(st),
		FormattedAddress: checkout.FormattedAddress(st.DeliveryInfo),
		ShippingMethod:   h.shippingMethod(),
	}
}

// shippingMethod is free while a shipping coupon is applied.
func (h *Handler) shippingMethod() checkout.ShippingMethod {
	if c, ok := h.cart.AppliedCoupon(); ok && c.Kind == coupon.KindShipping {
		return checkout.ShippingFree
	}
	return checkout.ShippingInternational
}

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(h.checkout.State()))
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch checkout.ContactPatch
	if err := decode(r, &patch); err != nil {
		badRequest(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(h.checkout.SetContactInfo(patch)))
}

func (h *Handler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	var patch checkout.DeliveryPatch
	if err := decode(r, &patch); err != nil {
		badRequest(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(h.checkout.SetDeliveryInfo(patch)))
}

type paymentRequest struct {
	Method checkout.PaymentMethod `json:"method"`
}

func (h *Handler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	st, err := h.checkout.SetPaymentMethod(req.Method)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(st))
}

type billingRequest struct {
	Same    bool                   `json:"same"`
	Address *checkout.DeliveryInfo `json:"address"`
}

func (h *Handler) SetBilling(w http.ResponseWriter, r *http.Request) {
	var req billingRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	st := h.checkout.SetBillingAddressSameAsDelivery(req.Same)
	if !req.Same && req.Address != nil {
		st = h.checkout.SetBillingAddress(req.Address)
	}
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(st))
}

func (h *Handler) ClearCheckout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.checkoutView(h.checkout.ClearCheckoutData()))
}

type validationResponse struct {
	Error  string               `json:"error"`
	Fields checkout.FieldErrors `json:"fields"`
}

// PlaceOrder validates the form and snapshots the cart into a new current
// order. Submission happens when the confirmation is viewed.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "transport"),
		zap.String("method", "PlaceOrder"),
	)

	if errs := h.checkout.ValidateForm(); len(errs) > 0 {
		utils.WriteJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Error:  "Please fix the highlighted fields",
			Fields: errs,
		})
		return
	}

	st := h.cart.State()
	if len(st.Items) == 0 {
		utils.WriteJSONError(w, "Your cart is empty", http.StatusUnprocessableEntity)
		return
	}

	o, err := h.checkout.CreateOrder(checkout.OrderInput{
		LineItems:      st.Items,
		CartSubtotal:   st.Subtotal(),
		AppliedCoupon:  st.AppliedCouponCode,
		DiscountAmount: st.DiscountAmount(),
		ShippingMethod: h.shippingMethod(),
	})
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		utils.WriteJSONError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", o.ItemCount()),
		zap.String("total", o.Total.StringFixed(2)),
	)
	utils.WriteJSON(w, http.StatusCreated, o)
}

type confirmationResponse struct {
	Order               checkout.Order `json:"order"`
	FormattedAddress    []string       `json:"formatted_address"`
	PaymentInstructions []string       `json:"payment_instructions"`
	Submission          order.Status   `json:"submission"`
}

func confirmation(o checkout.Order, st order.Status) confirmationResponse {
	return confirmationResponse{
		Order:               o,
		FormattedAddress:    checkout.FormattedAddress(o.DeliveryInfo),
		PaymentInstructions: checkout.PaymentInstructions(o),
		Submission:          st,
	}
}

// GetConfirmation renders the current order and submits it the first time
// it is viewed.
func (h *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	o, ok := h.checkout.CurrentOrder()
	if !ok {
		utils.WriteJSONError(w, "No order to confirm", http.StatusNotFound)
		return
	}
	st := h.submissions.Trigger(r.Context(), o)
	utils.WriteJSON(w, http.StatusOK, confirmation(o, st))
}

func (h *Handler) RetrySubmission(w http.ResponseWriter, r *http.Request) {
	o, ok := h.checkout.CurrentOrder()
	if !ok {
		utils.WriteJSONError(w, "No order to confirm", http.StatusNotFound)
		return
	}
	st, err := h.submissions.Retry(r.Context(), o)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, confirmation(o, st))
}

func (h *Handler) SkipSubmission(w http.ResponseWriter, r *http.Request) {
	o, ok := h.checkout.CurrentOrder()
	if !ok {
		utils.WriteJSONError(w, "No order to confirm", http.StatusNotFound)
		return
	}
	st, err := h.submissions.Skip(r.Context(), o)
	if err != nil {
		writeSubmissionError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, confirmation(o, st))
}

func writeSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrAlreadySaved),
		errors.Is(err, order.ErrSubmissionPending),
		errors.Is(err, order.ErrNothingToRetry),
		errors.Is(err, order.ErrUnknownOrder):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	default:
		utils.WriteJSONError(w, order.UserMessage(err), http.StatusBadGateway)
	}
}
