package transport

import (
	"net/http"
	"time"

	"storefront/internal/logger"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	CORSOrigin     string
	AdminJWTSecret string
	RequestTimeout time.Duration
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/coupons", h.ListCoupons)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddItem)
			r.Patch("/items/{id}", h.UpdateItem)
			r.Delete("/items/{id}", h.RemoveItem)
			r.Post("/coupon", h.ApplyCoupon)
			r.Delete("/coupon", h.RemoveCoupon)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", h.GetCheckout)
			r.Delete("/", h.ClearCheckout)
			r.Patch("/contact", h.UpdateContact)
			r.Patch("/delivery", h.UpdateDelivery)
			r.Put("/payment", h.SetPayment)
			r.Put("/billing", h.SetBilling)
			r.Post("/orders", h.PlaceOrder)
			r.Get("/confirmation", h.GetConfirmation)
			r.Post("/confirmation/retry", h.RetrySubmission)
			r.Post("/confirmation/skip", h.SkipSubmission)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/{number}", h.GetOrder)
			r.With(middleware.AdminOnly(cfg.AdminJWTSecret)).Post("/{number}/tracking", h.AdvanceTracking)
		})
	})

	return r
}
