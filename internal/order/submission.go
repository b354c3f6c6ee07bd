package order

import (
	"context"
	"sync"
	"time"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/logger"
	"storefront/internal/metrics"

	"go.uber.org/zap"
)

// DefaultCompleteDelay is how long a saved order stays current before it
// moves into history.
const DefaultCompleteDelay = 10 * time.Second

type CartClearer interface {
	Clear() cart.State
}

type OrderCompleter interface {
	CompleteOrderNumber(number string) bool
}

// Workflow submits the current order to the order-intake service at most
// once per order number. A failed attempt can be retried or skipped.
type Workflow struct {
	gateway       Gateway
	cart          CartClearer
	orders        OrderCompleter
	completeDelay time.Duration
	stats         stats

	mu          sync.Mutex
	orderNumber string
	state       SubmitState
	saved       bool
	bypassed    bool
	attempts    int
	lastErr     error
	receipt     *Receipt
	timer       *time.Timer
}

type stats struct {
	attempts    metrics.Counter
	succeeded   metrics.Counter
	failed      metrics.Counter
	bypassed    metrics.Counter
	lastLatency metrics.Gauge
}

// Stats counts submissions since startup.
type Stats struct {
	Attempts      uint64 `json:"attempts"`
	Succeeded     uint64 `json:"succeeded"`
	Failed        uint64 `json:"failed"`
	Bypassed      uint64 `json:"bypassed"`
	LastLatencyMS int64  `json:"last_latency_ms"`
}

type WorkflowOption func(*Workflow)

// WithCompleteDelay sets the delay before completion. Zero or less completes
// immediately.
func WithCompleteDelay(d time.Duration) WorkflowOption {
	return func(w *Workflow) { w.completeDelay = d }
}

func NewWorkflow(g Gateway, c CartClearer, o OrderCompleter, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		gateway:       g,
		cart:          c,
		orders:        o,
		completeDelay: DefaultCompleteDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Trigger submits o unless a submission for the same order number has
// already started. A new order number resets the latch.
func (w *Workflow) Trigger(ctx context.Context, o checkout.Order) Status {
	w.mu.Lock()
	if w.orderNumber != o.OrderNumber {
		w.resetLocked(o.OrderNumber)
	}
	if w.state != StateIdle {
		st := w.statusLocked()
		w.mu.Unlock()
		return st
	}
	w.beginLocked()
	w.mu.Unlock()

	return w.submit(ctx, o)
}

// Retry resubmits an order whose last attempt failed.
func (w *Workflow) Retry(ctx context.Context, o checkout.Order) (Status, error) {
	w.mu.Lock()
	if err := w.checkFailedLocked(o.OrderNumber); err != nil {
		st := w.statusLocked()
		w.mu.Unlock()
		return st, err
	}
	w.beginLocked()
	w.mu.Unlock()

	return w.submit(ctx, o), nil
}

// Skip marks a failed order as saved without contacting the server. The
// order exists only locally afterwards.
func (w *Workflow) Skip(ctx context.Context, o checkout.Order) (Status, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "workflow"),
		zap.String("method", "Skip"),
		zap.String("order_number", o.OrderNumber),
	)

	w.mu.Lock()
	if err := w.checkFailedLocked(o.OrderNumber); err != nil {
		st := w.statusLocked()
		w.mu.Unlock()
		return st, err
	}
	w.state = StateSucceeded
	w.saved = true
	w.bypassed = true
	w.stats.bypassed.Inc()
	w.scheduleLocked(o.OrderNumber)
	st := w.statusLocked()
	w.mu.Unlock()

	log.Warn("order submission bypassed, order kept locally only")
	w.cart.Clear()
	w.completeIfImmediate(o.OrderNumber)
	return st, nil
}

// Status reports the submission state for the given order number.
func (w *Workflow) Status(orderNumber string) Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.orderNumber != orderNumber {
		return Status{OrderNumber: orderNumber, State: StateIdle}
	}
	return w.statusLocked()
}

func (w *Workflow) Stats() Stats {
	return Stats{
		Attempts:      w.stats.attempts.Load(),
		Succeeded:     w.stats.succeeded.Load(),
		Failed:        w.stats.failed.Load(),
		Bypassed:      w.stats.bypassed.Load(),
		LastLatencyMS: w.stats.lastLatency.Load().Milliseconds(),
	}
}

// Close stops a pending completion timer.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Workflow) submit(ctx context.Context, o checkout.Order) Status {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "workflow"),
		zap.String("method", "submit"),
		zap.String("order_number", o.OrderNumber),
	)

	timer := metrics.StartTimer()
	// The gateway's client timeout bounds the call. A caller that goes away
	// must not turn a request the server may have saved into a failure.
	receipt, err := w.gateway.SubmitOrder(context.WithoutCancel(ctx), BuildPayload(o))
	w.stats.lastLatency.Set(timer.Duration())

	w.mu.Lock()
	if w.orderNumber != o.OrderNumber {
		// Superseded by a newer order while in flight.
		st := Status{OrderNumber: o.OrderNumber, State: StateIdle}
		w.mu.Unlock()
		return st
	}
	if err != nil {
		w.stats.failed.Inc()
		w.state = StateFailed
		w.lastErr = err
		st := w.statusLocked()
		w.mu.Unlock()
		log.Warn("order submission failed", zap.Int("attempt", st.Attempts), zap.Error(err))
		return st
	}

	w.stats.succeeded.Inc()
	w.state = StateSucceeded
	w.saved = true
	w.lastErr = nil
	w.receipt = receipt
	w.scheduleLocked(o.OrderNumber)
	st := w.statusLocked()
	w.mu.Unlock()

	log.Info("order submitted", zap.Int("attempt", st.Attempts))
	w.cart.Clear()
	w.completeIfImmediate(o.OrderNumber)
	return st
}

func (w *Workflow) resetLocked(orderNumber string) {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.orderNumber = orderNumber
	w.state = StateIdle
	w.saved = false
	w.bypassed = false
	w.attempts = 0
	w.lastErr = nil
	w.receipt = nil
}

func (w *Workflow) beginLocked() {
	w.stats.attempts.Inc()
	w.state = StateInFlight
	w.attempts++
	w.lastErr = nil
}

func (w *Workflow) checkFailedLocked(orderNumber string) error {
	if w.orderNumber != orderNumber {
		return ErrUnknownOrder
	}
	switch w.state {
	case StateInFlight:
		return ErrSubmissionPending
	case StateSucceeded:
		return ErrAlreadySaved
	case StateIdle:
		return ErrNothingToRetry
	}
	return nil
}

func (w *Workflow) scheduleLocked(orderNumber string) {
	if w.completeDelay <= 0 {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.completeDelay, func() {
		w.orders.CompleteOrderNumber(orderNumber)
	})
}

func (w *Workflow) completeIfImmediate(orderNumber string) {
	if w.completeDelay <= 0 {
		w.orders.CompleteOrderNumber(orderNumber)
	}
}

func (w *Workflow) statusLocked() Status {
	st := Status{
		OrderNumber: w.orderNumber,
		State:       w.state,
		Saved:       w.saved,
		Bypassed:    w.bypassed,
		Attempts:    w.attempts,
		Receipt:     w.receipt,
	}
	if w.lastErr != nil {
		st.Error = UserMessage(w.lastErr)
	}
	return st
}
