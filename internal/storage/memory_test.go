package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.Get(ctx, "shopping-cart")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`{"cart":[]}`)
	require.NoError(t, m.Set(ctx, "shopping-cart", value))

	// caller mutations must not leak into the store
	value[0] = 'X'
	got, err := m.Get(ctx, "shopping-cart")
	require.NoError(t, err)
	assert.Equal(t, `{"cart":[]}`, string(got))

	require.NoError(t, m.Delete(ctx, "shopping-cart"))
	_, err = m.Get(ctx, "shopping-cart")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.Set(ctx, "", nil), ErrInvalidKey)
}
