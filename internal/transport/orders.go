package transport

import (
	"errors"
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.checkout.OrderHistory())
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.checkout.GetOrderByID(chi.URLParam(r, "number"))
	if !ok {
		utils.WriteJSONError(w, checkout.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

type trackingRequest struct {
	Stage int `json:"stage"`
}

// AdvanceTracking completes every tracking step up to the given stage.
func (h *Handler) AdvanceTracking(w http.ResponseWriter, r *http.Request) {
	var req trackingRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	o, err := h.checkout.UpdateOrderStatus(chi.URLParam(r, "number"), req.Stage)
	switch {
	case errors.Is(err, checkout.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, checkout.ErrInvalidStage):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}
