package rotator

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is the render cadence when a caller does not pick one.
const DefaultTickInterval = 33 * time.Millisecond

// Clock is the free-running driver for the rotation. It emits elapsed time
// since Start on a read-only channel at a fixed interval; only the clock
// advances elapsed time, consumers treat the samples as read-only. Stop (or
// context cancellation) releases the underlying ticker and closes the
// channel, so a torn-down surface never leaves a repeating timer behind.
type Clock struct {
	interval time.Duration
	ch       chan time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewClock creates a clock ticking at the given interval. Non-positive
// intervals fall back to DefaultTickInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{
		interval: interval,
		ch:       make(chan time.Duration, 1),
		stop:     make(chan struct{}),
	}
}

// Start begins ticking and returns the elapsed-time channel. It must be
// called at most once; the channel closes when the clock stops. Samples are
// dropped, not queued, when the consumer falls behind a full tick.
func (c *Clock) Start(ctx context.Context) <-chan time.Duration {
	ticker := time.NewTicker(c.interval)
	start := time.Now()
	go func() {
		defer close(c.ch)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case now := <-ticker.C:
				select {
				case c.ch <- now.Sub(start):
				default:
				}
			}
		}
	}()
	return c.ch
}

// Stop halts the clock and releases its ticker. Safe to call more than once
// and safe to call concurrently with a running Start loop.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
