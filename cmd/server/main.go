package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/order"
	"storefront/internal/storage"
	"storefront/internal/transport"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	initDBFunc      = db.NewDatabase
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	kv, closeKV, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer closeKV()

	handler, cleanup := newServer(cfg, kv)
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("storefront server running",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.CartStorage),
			zap.String("api", cfg.APIBaseURL),
		)
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStorage builds the durable cart slot selected by CART_STORAGE.
func openStorage(cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.CartStorage {
	case config.StorageMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return storage.NewRedisStore(client), func() { client.Close() }, nil

	case config.StoragePostgres:
		database, err := initDBFunc(cfg)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgresStore(database), closeDB(database), nil

	default:
		fs, err := storage.NewFileStore(cfg.CartFileDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

func closeDB(database *sql.DB) func() {
	return func() {
		if err := database.Close(); err != nil {
			logger.L().Warn("failed closing database", zap.Error(err))
		}
	}
}

// newServer wires the stores, submission workflow and HTTP API. The returned
// cleanup stops background timers.
func newServer(cfg *config.Config, kv storage.KV) (http.Handler, func()) {
	cartStore := cart.Open(context.Background(), kv)
	checkoutStore := checkout.NewStore()

	workflow := order.NewWorkflow(
		order.NewHTTPGateway(cfg.APIBaseURL, cfg.HTTPClientTimeout),
		cartStore,
		checkoutStore,
		order.WithCompleteDelay(cfg.OrderCompleteDelay),
	)
	limiter := middleware.NewRateLimiter()

	h := transport.NewHandler(
		catalog.NewClient(cfg.APIBaseURL, cfg.HTTPClientTimeout),
		cartStore,
		checkoutStore,
		workflow,
	)
	router := transport.NewRouter(h, transport.RouterConfig{
		CORSOrigin:     cfg.CORSOrigin,
		AdminJWTSecret: cfg.AdminJWTSecret,
		RateLimiter:    limiter,
	})

	return router, func() {
		workflow.Close()
		limiter.Stop()
	}
}
