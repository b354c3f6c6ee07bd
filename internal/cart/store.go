package cart

import (
	"fmt"
	"strings"
	"sync"

	"storefront/internal/catalog"
	"storefront/internal/coupon"

	"github.com/shopspring/decimal"
)

// CommitHook observes every state accepted by the store.
type CommitHook func(State)

// Store owns the cart state. Dispatches are serialized; each runs to
// completion, then the commit hook sees the settled state.
type Store struct {
	mu       sync.Mutex
	state    State
	onCommit CommitHook
}

func NewStore() *Store {
	return &Store{state: State{Items: []LineItem{}, DiscountRate: decimal.Zero}}
}

// OnCommit installs the hook run after each accepted mutation. Passing nil
// disables it.
func (s *Store) OnCommit(h CommitHook) {
	s.mu.Lock()
	s.onCommit = h
	s.mu.Unlock()
}

// MaxLineQuantity bounds a single line item, merged adds included.
const MaxLineQuantity = 9999

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(a)
}

func (s *Store) dispatchLocked(a Action) State {
	s.state = Reduce(s.state, a)
	snapshot := s.state.Clone()
	if s.onCommit != nil {
		s.onCommit(snapshot.Clone())
	}
	return snapshot
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Totals() Totals {
	return s.State().Totals()
}

// AddItem rejects a quantity that would take the merged line past
// MaxLineQuantity.
func (s *Store) AddItem(p catalog.Product, quantity int) (State, error) {
	if quantity < 1 || quantity > MaxLineQuantity {
		return s.State(), ErrInvalidQuantity
	}
	if strings.TrimSpace(p.ID.String()) == "" {
		return s.State(), ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.state.Items {
		if it.ID == p.ID && quantity > MaxLineQuantity-it.Quantity {
			return s.state.Clone(), ErrInvalidQuantity
		}
	}

	return s.dispatchLocked(AddItem{Item: LineItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}}), nil
}

// UpdateQuantity ignores quantities below 1 or above MaxLineQuantity.
func (s *Store) UpdateQuantity(id catalog.ProductID, quantity int) State {
	if quantity < 1 || quantity > MaxLineQuantity {
		return s.State()
	}
	return s.Dispatch(UpdateQuantity{ID: id, Quantity: quantity})
}

func (s *Store) RemoveItem(id catalog.ProductID) State {
	return s.Dispatch(RemoveItem{ID: id})
}

// Clear empties the items and drops the coupon in one transition.
func (s *Store) Clear() State {
	return s.Dispatch(Clear{})
}

func (s *Store) ApplyCoupon(code string) ApplyResult {
	c, ok := coupon.Lookup(code)
	if !ok {
		return ApplyResult{Success: false, Message: "Invalid coupon code"}
	}

	s.Dispatch(ApplyCoupon{Coupon: c})
	return ApplyResult{
		Success: true,
		Message: fmt.Sprintf("Coupon applied: %s", c.Description),
	}
}

func (s *Store) RemoveCoupon() State {
	return s.Dispatch(RemoveCoupon{})
}

// AppliedCoupon returns the catalog entry for the applied code.
func (s *Store) AppliedCoupon() (coupon.Coupon, bool) {
	st := s.State()
	if !st.HasCoupon() {
		return coupon.Coupon{}, false
	}
	return coupon.Lookup(st.AppliedCouponCode)
}

func (s *Store) AvailableCoupons() []coupon.Coupon {
	return coupon.All()
}
