package checkout

import (
	"sync"
	"time"

	"storefront/internal/utils"
)

// Store owns the checkout state and every order it creates.
type Store struct {
	mu    sync.Mutex
	state State

	now         func() time.Time
	orderNumber func(time.Time) string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithOrderNumbers(gen func(time.Time) string) Option {
	return func(s *Store) { s.orderNumber = gen }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		state:       initialState(),
		now:         time.Now,
		orderNumber: utils.GenerateOrderNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	return s.state.Clone()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) SetContactInfo(p ContactPatch) State {
	return s.Dispatch(SetContactInfo{Patch: p})
}

func (s *Store) SetDeliveryInfo(p DeliveryPatch) State {
	return s.Dispatch(SetDeliveryInfo{Patch: p})
}

func (s *Store) SetPaymentMethod(m PaymentMethod) (State, error) {
	if !m.Valid() {
		return s.State(), ErrInvalidPaymentMethod
	}
	return s.Dispatch(SetPaymentMethod{Method: m}), nil
}

func (s *Store) SetBillingAddressSameAsDelivery(same bool) State {
	return s.Dispatch(SetBillingAddressSame{Same: same})
}

func (s *Store) SetBillingAddress(a *DeliveryInfo) State {
	return s.Dispatch(SetBillingAddress{Address: a})
}

// CreateOrder builds an order from the current form state and the given
// cart values and makes it the current order. Cart state is not touched.
// An unknown shipping method leaves the current order unchanged.
func (s *Store) CreateOrder(in OrderInput) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	o, err := buildOrder(s.state, in, now, s.orderNumber(now))
	if err != nil {
		return Order{}, err
	}
	s.state = Reduce(s.state, SetCurrentOrder{Order: o})
	return o.Clone(), nil
}

func (s *Store) CurrentOrder() (Order, bool) {
	st := s.State()
	if st.CurrentOrder == nil {
		return Order{}, false
	}
	return *st.CurrentOrder, true
}

// CompleteOrder moves the current order into history. It reports false when
// there was no current order.
func (s *Store) CompleteOrder() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentOrder == nil {
		return false
	}
	s.state = Reduce(s.state, AddToOrderHistory{})
	return true
}

// CompleteOrderNumber completes the current order only if it is still the
// one identified by number.
func (s *Store) CompleteOrderNumber(number string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentOrder == nil || s.state.CurrentOrder.OrderNumber != number {
		return false
	}
	s.state = Reduce(s.state, AddToOrderHistory{})
	return true
}

// ClearCheckoutData resets the form and current order; history survives.
func (s *Store) ClearCheckoutData() State {
	return s.Dispatch(ClearCheckoutData{})
}

func (s *Store) OrderHistory() []Order {
	return s.State().OrderHistory
}

// GetOrderByID looks through the history first, then the current order.
func (s *Store) GetOrderByID(number string) (Order, bool) {
	st := s.State()
	for _, o := range st.OrderHistory {
		if o.OrderNumber == number {
			return o, true
		}
	}
	if st.CurrentOrder != nil && st.CurrentOrder.OrderNumber == number {
		return *st.CurrentOrder, true
	}
	return Order{}, false
}

// UpdateOrderStatus completes every tracking stage up to stage and returns
// the updated order.
func (s *Store) UpdateOrderStatus(number string, stage int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *Order
	for i := range s.state.OrderHistory {
		if s.state.OrderHistory[i].OrderNumber == number {
			found = &s.state.OrderHistory[i]
			break
		}
	}
	if found == nil && s.state.CurrentOrder != nil && s.state.CurrentOrder.OrderNumber == number {
		found = s.state.CurrentOrder
	}
	if found == nil {
		return Order{}, ErrOrderNotFound
	}

	updated, err := found.CompleteThrough(stage, s.now())
	if err != nil {
		return Order{}, err
	}
	s.state = Reduce(s.state, ReplaceOrder{Order: updated})
	return updated.Clone(), nil
}

func (s *Store) IsCheckoutValid() bool {
	return IsCheckoutValid(s.State())
}

func (s *Store) ValidateForm() FieldErrors {
	return ValidateForm(s.State())
}

// FormattedAddress formats the current delivery address.
func (s *Store) FormattedAddress() []string {
	return FormattedAddress(s.State().DeliveryInfo)
}
