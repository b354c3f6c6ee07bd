package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		AppPort:    "8080",
		AppEnv:     "test",
		APIBaseURL: "http://127.0.0.1:1",
		CORSOrigin: "http://localhost:3000",
	}

	router, cleanup := newServer(cfg, storage.NewMemoryStore())
	defer cleanup()

	assert.NotNil(t, router)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "OK")

	req, _ = http.NewRequest("GET", "/api/cart", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewServer_RestoresCart(t *testing.T) {
	kv := storage.NewMemoryStore()
	saved := `{"cart":[{"id":1,"name":"Linen Shirt","price":25.5,"image":"","quantity":2}],"appliedCoupon":null,"discount":0,"couponDescription":null}`
	require.NoError(t, kv.Set(context.Background(), cart.StorageKey, []byte(saved)))

	router, cleanup := newServer(&config.Config{APIBaseURL: "http://127.0.0.1:1"}, kv)
	defer cleanup()

	req, _ := http.NewRequest("GET", "/api/cart", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Linen Shirt")
}

func TestOpenStorage(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		kv, closeKV, err := openStorage(&config.Config{CartStorage: config.StorageMemory})
		require.NoError(t, err)
		defer closeKV()
		assert.IsType(t, &storage.MemoryStore{}, kv)
	})

	t.Run("File", func(t *testing.T) {
		kv, closeKV, err := openStorage(&config.Config{CartStorage: config.StorageFile, CartFileDir: t.TempDir()})
		require.NoError(t, err)
		defer closeKV()
		assert.IsType(t, &storage.FileStore{}, kv)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		kv, closeKV, err := openStorage(&config.Config{CartStorage: config.StorageRedis, RedisAddr: mr.Addr()})
		require.NoError(t, err)
		defer closeKV()
		assert.IsType(t, &storage.RedisStore{}, kv)
	})

	t.Run("Redis unreachable", func(t *testing.T) {
		_, _, err := openStorage(&config.Config{CartStorage: config.StorageRedis, RedisAddr: "127.0.0.1:1"})
		assert.Error(t, err)
	})

	t.Run("Postgres", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()

		origInitDB := initDBFunc
		defer func() { initDBFunc = origInitDB }()
		initDBFunc = func(cfg *config.Config) (*sql.DB, error) {
			return mockDB, nil
		}

		kv, closeKV, err := openStorage(&config.Config{CartStorage: config.StoragePostgres})
		require.NoError(t, err)
		assert.IsType(t, &storage.PostgresStore{}, kv)

		closeKV()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRun(t *testing.T) {
	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	startServerFunc = func(srv *http.Server) error {
		assert.Equal(t, ":8080", srv.Addr)
		return http.ErrServerClosed
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("CART_STORAGE", "memory")

	assert.NoError(t, run())
}
