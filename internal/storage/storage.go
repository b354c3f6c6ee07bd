// Package storage provides the durable key-value slot the cart persists to.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("storage key not found")
	ErrInvalidKey = errors.New("invalid storage key")
)

// KV is a durable key-value capability. Get returns ErrNotFound for a key
// that was never written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
