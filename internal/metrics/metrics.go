package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Gauge holds the most recent duration observed.
type Gauge struct {
	nanos int64
}

func (g *Gauge) Set(d time.Duration) {
	atomic.StoreInt64(&g.nanos, int64(d))
}

func (g *Gauge) Load() time.Duration {
	return time.Duration(atomic.LoadInt64(&g.nanos))
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
