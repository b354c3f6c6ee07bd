package transport

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/coupon"
	"storefront/internal/utils"

	"github.com/go-chi/chi/v5"
)

type cartResponse struct {
	Cart          cart.State        `json:"cart"`
	Totals        cart.Totals       `json:"totals"`
	AppliedCoupon *coupon.Coupon    `json:"applied_coupon,omitempty"`
	Result        *cart.ApplyResult `json:"result,omitempty"`
}

func (h *Handler) cartView(st cart.State) cartResponse {
	resp := cartResponse{Cart: st, Totals: st.Totals()}
	if c, ok := h.cart.AppliedCoupon(); ok {
		resp.AppliedCoupon = &c
	}
	return resp
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cartView(h.cart.State()))
}

type addItemRequest struct {
	ProductID catalog.ProductID `json:"product_id"`
	Quantity  *int              `json:"quantity"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	if req.ProductID == "" {
		utils.WriteJSONError(w, "product_id is required", http.StatusBadRequest)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	if !p.Available() {
		utils.WriteJSONError(w, "Product is out of stock", http.StatusConflict)
		return
	}

	st, err := h.cart.AddItem(*p, qty)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) || errors.Is(err, cart.ErrInvalidProduct) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.cartView(st))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem leaves the cart unchanged for quantities below 1.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	st := h.cart.UpdateQuantity(catalog.ProductID(chi.URLParam(r, "id")), req.Quantity)
	utils.WriteJSON(w, http.StatusOK, h.cartView(st))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	st := h.cart.RemoveItem(catalog.ProductID(chi.URLParam(r, "id")))
	utils.WriteJSON(w, http.StatusOK, h.cartView(st))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cartView(h.cart.Clear()))
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	res := h.cart.ApplyCoupon(req.Code)
	resp := h.cartView(h.cart.State())
	resp.Result = &res

	code := http.StatusOK
	if !res.Success {
		code = http.StatusUnprocessableEntity
	}
	utils.WriteJSON(w, code, resp)
}

func (h *Handler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cartView(h.cart.RemoveCoupon()))
}

func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.cart.AvailableCoupons())
}
