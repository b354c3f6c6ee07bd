package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/order"
	"storefront/internal/utils"
)

// Handler exposes the cart, checkout and submission workflow over JSON.
type Handler struct {
	catalog     catalog.Service
	cart        *cart.Store
	checkout    *checkout.Store
	submissions *order.Workflow
}

func NewHandler(c catalog.Service, cs *cart.Store, co *checkout.Store, w *order.Workflow) *Handler {
	return &Handler{
		catalog:     c,
		cart:        cs,
		checkout:    co,
		submissions: w,
	}
}

var errEmptyBody = errors.New("request body is empty")

// decode reads a JSON body into v. Unknown fields are rejected.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func badRequest(w http.ResponseWriter, err error) {
	utils.WriteJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
}

type healthResponse struct {
	Status      string      `json:"status"`
	Submissions order.Stats `json:"submissions"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, healthResponse{
		Status:      "OK",
		Submissions: h.submissions.Stats(),
	})
}
