package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/logger"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Service reads the product catalog from the external REST service.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id ProductID) (*Product, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker("catalog"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a missing product is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProductNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.L().Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

func (c *client) ListProducts(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "ListProducts"),
	)

	body, err := c.fetch(ctx, "/products")
	if err != nil {
		log.Error("failed to fetch products", zap.Error(err))
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		log.Error("failed decoding products", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	log.Debug("products fetched", zap.Int("count", len(products)))
	return products, nil
}

func (c *client) GetProduct(ctx context.Context, id ProductID) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "GetProduct"),
		zap.String("product_id", id.String()),
	)

	if strings.TrimSpace(id.String()) == "" {
		return nil, ErrProductNotFound
	}

	body, err := c.fetch(ctx, "/products/"+url.PathEscape(id.String()))
	if err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			log.Error("failed to fetch product", zap.Error(err))
		}
		return nil, err
	}

	var p Product
	if err := json.Unmarshal(body, &p); err != nil {
		log.Error("failed decoding product", zap.Error(err))
		return nil, fmt.Errorf("decode product: %w", err)
	}

	return &p, nil
}

func (c *client) fetch(ctx context.Context, path string) ([]byte, error) {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read catalog response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrProductNotFound
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return b, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return body, err
}
