package transport

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type productListResponse struct {
	catalog.Page
	StockCounts catalog.StockCounts `json:"stock_counts"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		utils.WriteJSONError(w, "invalid page", http.StatusBadRequest)
		return
	}
	perPage, err := intParam(q.Get("per_page"), catalog.DefaultPerPage)
	if err != nil {
		utils.WriteJSONError(w, "invalid per_page", http.StatusBadRequest)
		return
	}

	filter := catalog.Filter{Category: q.Get("category")}
	if v := q.Get("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			utils.WriteJSONError(w, "invalid in_stock", http.StatusBadRequest)
			return
		}
		filter.InStock = &b
	}

	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	p, err := catalog.Paginate(filter.Apply(products), page, perPage)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, http.StatusOK, productListResponse{
		Page:        p,
		StockCounts: catalog.CountStock(products),
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), catalog.ProductID(chi.URLParam(r, "id")))
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		utils.WriteJSONError(w, "Catalog is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		logger.FromCtx(r.Context()).Error("catalog request failed",
			zap.String("layer", "transport"),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "Failed to load products", http.StatusBadGateway)
	}
}

func intParam(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
