package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/logger"
	"storefront/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockKV is a mock implementation of the storage.KV interface
type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestEncodeDecode(t *testing.T) {
	s := NewStore()
	_, _ = s.AddItem(product("1", "10.10"), 2)
	s.ApplyCoupon("welcome5")

	b, err := Encode(s.State())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"cart": [{"id": "1", "name": "Product 1", "price": 10.1, "image": "1.jpg", "quantity": 2}],
		"appliedCoupon": "WELCOME5",
		"discount": 0.05,
		"couponDescription": "5% off for new customers"
	}`, string(b))

	st, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, st.Items, 1)
	assert.True(t, st.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.1")))
	assert.Equal(t, "WELCOME5", st.AppliedCouponCode)
}

func TestDecode(t *testing.T) {
	t.Run("BrowserShapeWithNumericIDs", func(t *testing.T) {
		st, err := Decode([]byte(`{"cart":[{"id":3,"name":"Rose","price":12.5,"image":"r.jpg","quantity":1}],"appliedCoupon":null,"discount":0,"couponDescription":null}`))
		require.NoError(t, err)
		assert.Equal(t, catalogID("3"), st.Items[0].ID)
		assert.False(t, st.HasCoupon())
	})

	t.Run("CouponReResolvedFromCatalog", func(t *testing.T) {
		st, err := Decode([]byte(`{"cart":[],"appliedCoupon":"SAVE10","discount":0.9,"couponDescription":"tampered"}`))
		require.NoError(t, err)
		assert.True(t, st.DiscountRate.Equal(decimal.RequireFromString("0.1")))
		assert.Equal(t, "10% off your order", st.CouponDescription)
	})

	t.Run("UnknownCouponDropped", func(t *testing.T) {
		st, err := Decode([]byte(`{"cart":[],"appliedCoupon":"GONE","discount":0.5,"couponDescription":"old"}`))
		require.NoError(t, err)
		assert.False(t, st.HasCoupon())
		assert.True(t, st.DiscountRate.IsZero())
	})

	t.Run("Corrupted", func(t *testing.T) {
		_, err := Decode([]byte(`{not json`))
		assert.ErrorIs(t, err, ErrMalformedCart)
	})

	t.Run("BadQuantity", func(t *testing.T) {
		_, err := Decode([]byte(`{"cart":[{"id":"1","price":1,"quantity":0}]}`))
		assert.ErrorIs(t, err, ErrMalformedCart)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		_, err := Decode([]byte(`{"cart":[{"id":"1","price":1,"quantity":1},{"id":1,"price":1,"quantity":1}]}`))
		assert.ErrorIs(t, err, ErrMalformedCart)
	})
}

func TestOpen_RestoresThenPersists(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`{"cart":[{"id":"7","name":"Tulip","price":4,"image":"","quantity":3}],"appliedCoupon":"SAVE20"}`)))

	s := Open(ctx, kv)

	st := s.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, 3, st.Items[0].Quantity)
	assert.Equal(t, "SAVE20", st.AppliedCouponCode)

	// restoring must not have rewritten the slot with an empty cart
	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Tulip"`)

	s.UpdateQuantity("7", 5)
	raw, err = kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":5`)
}

func TestOpen_CorruptedSlotYieldsEmptyCart(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, StorageKey, []byte(`{"cart": [oops`)))

	var s *Store
	assert.NotPanics(t, func() { s = Open(ctx, kv) })
	assert.Empty(t, s.State().Items)
	assert.Equal(t, 1, observed.FilterMessage("discarding saved cart").Len())
}

func TestOpen_StorageErrors(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	kv := new(MockKV)
	kv.On("Get", mock.Anything, StorageKey).Return(nil, errors.New("disk gone"))
	kv.On("Set", mock.Anything, StorageKey, mock.Anything).Return(errors.New("disk full"))

	s := Open(context.Background(), kv)
	assert.Empty(t, s.State().Items)

	// a failed write is swallowed, the in-memory cart still changes
	st, err := s.AddItem(product("1", "10"), 1)
	assert.NoError(t, err)
	assert.Len(t, st.Items, 1)

	assert.Equal(t, 1, observed.FilterMessage("failed to load saved cart").Len())
	assert.Equal(t, 1, observed.FilterMessage("failed to save cart").Len())
	kv.AssertExpectations(t)
}

func TestOpen_MissingSlot(t *testing.T) {
	kv := storage.NewMemoryStore()
	s := Open(context.Background(), kv)
	assert.Empty(t, s.State().Items)

	_, err := kv.Get(context.Background(), StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound, "nothing is written until the first mutation")
}
