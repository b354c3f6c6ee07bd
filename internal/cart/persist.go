package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/coupon"
	"storefront/internal/logger"
	"storefront/internal/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StorageKey is the durable slot holding the saved cart.
const StorageKey = "shopping-cart"

const persistTimeout = 5 * time.Second

// savedCart is the on-disk shape, kept compatible with what the browser
// storefront wrote to localStorage.
type savedCart struct {
	Cart              []savedItem `json:"cart"`
	AppliedCoupon     *string     `json:"appliedCoupon"`
	Discount          float64     `json:"discount"`
	CouponDescription *string     `json:"couponDescription"`
}

type savedItem struct {
	ID       catalog.ProductID `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Image    string            `json:"image"`
	Quantity int               `json:"quantity"`
}

func Encode(s State) ([]byte, error) {
	out := savedCart{
		Cart:     make([]savedItem, 0, len(s.Items)),
		Discount: s.DiscountRate.InexactFloat64(),
	}
	for _, it := range s.Items {
		out.Cart = append(out.Cart, savedItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.UnitPrice.InexactFloat64(),
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	if s.HasCoupon() {
		code, desc := s.AppliedCouponCode, s.CouponDescription
		out.AppliedCoupon = &code
		out.CouponDescription = &desc
	}
	return json.Marshal(out)
}

// Decode parses a saved cart. The coupon is re-resolved against the catalog
// so a restored state always matches the current catalog entry.
func Decode(b []byte) (State, error) {
	var in savedCart
	if err := json.Unmarshal(b, &in); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformedCart, err)
	}

	st := State{Items: make([]LineItem, 0, len(in.Cart)), DiscountRate: decimal.Zero}
	seen := make(map[catalog.ProductID]bool, len(in.Cart))
	for _, it := range in.Cart {
		if it.ID == "" || it.Quantity < 1 || seen[it.ID] {
			return State{}, fmt.Errorf("%w: bad line item %q", ErrMalformedCart, it.ID)
		}
		seen[it.ID] = true
		st.Items = append(st.Items, LineItem{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: decimal.NewFromFloat(it.Price),
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}

	if in.AppliedCoupon != nil {
		if c, ok := coupon.Lookup(*in.AppliedCoupon); ok {
			st.AppliedCouponCode = c.Code
			st.DiscountRate = c.DiscountRate
			st.CouponDescription = c.Description
		}
	}
	return st, nil
}

// Load reads the saved cart once. Absent or malformed data reports false and
// never returns an error; a malformed slot is logged at warn level.
func Load(ctx context.Context, kv storage.KV) (State, bool) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "cart"),
		zap.String("method", "Load"),
	)

	b, err := kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return State{}, false
	}
	if err != nil {
		log.Warn("failed to load saved cart", zap.Error(err))
		return State{}, false
	}

	st, err := Decode(b)
	if err != nil {
		log.Warn("discarding saved cart", zap.Error(err))
		return State{}, false
	}

	log.Debug("saved cart restored", zap.Int("items", len(st.Items)))
	return st, true
}

// Persister returns a commit hook writing every state to kv. Write failures
// are logged and swallowed.
func Persister(kv storage.KV) CommitHook {
	return func(s State) {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		log := logger.L().With(
			zap.String("layer", "cart"),
			zap.String("method", "Persist"),
		)

		b, err := Encode(s)
		if err != nil {
			log.Warn("failed to encode cart", zap.Error(err))
			return
		}
		if err := kv.Set(ctx, StorageKey, b); err != nil {
			log.Warn("failed to save cart", zap.Error(err))
		}
	}
}

// Open builds a store restored from kv, then starts persisting to it. The
// restore finishes before the hook is installed, so the initial empty state
// never overwrites a saved cart.
func Open(ctx context.Context, kv storage.KV) *Store {
	s := NewStore()
	if st, ok := Load(ctx, kv); ok {
		s.Dispatch(Restore{State: st})
	}
	s.OnCommit(Persister(kv))
	return s
}
