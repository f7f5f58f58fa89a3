package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCarouselInterval is the auto-advance period of the news carousel.
const DefaultCarouselInterval = 5 * time.Second

// NextIndex advances a carousel index, wrapping to 0 after the last slide.
func NextIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalizeIndex(index, count) + 1) % count
}

// PrevIndex moves a carousel index back, wrapping to the last slide from 0.
func PrevIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalizeIndex(index, count) - 1 + count) % count
}

// SlideOffset is the horizontal translation of the slide strip, in percent of the viewport.
func SlideOffset(index int) int {
	return index * 100
}

// SlideTransform renders the CSS transform for the slide strip.
func SlideTransform(index int) string {
	return fmt.Sprintf("translateX(-%d%%)", SlideOffset(index))
}

func normalizeIndex(index, count int) int {
	index %= count
	if index < 0 {
		index += count
	}
	return index
}

// Clock creates tickers. Tests swap in a manual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker is the subset of time.Ticker used by the auto advancer.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the wall-clock Clock.
type SystemClock struct{}

// NewTicker wraps time.NewTicker.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t systemTicker) C() <-chan time.Time { return t.ticker.C }
func (t systemTicker) Stop()               { t.ticker.Stop() }

// AutoAdvancer owns the repeating carousel timer. The timer exists only
// between Start and Stop; once Stop returns the tick callback never runs again.
type AutoAdvancer struct {
	clock    Clock
	interval time.Duration
	tick     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAutoAdvancer builds an advancer that calls tick once per interval while running.
func NewAutoAdvancer(clock Clock, interval time.Duration, tick func(ctx context.Context)) *AutoAdvancer {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &AutoAdvancer{
		clock:    clock,
		interval: interval,
		tick:     tick,
	}
}

// Interval reports the tick period.
func (a *AutoAdvancer) Interval() time.Duration {
	return a.interval
}

// Start acquires the ticker. Calling Start on a running advancer is a no-op.
// Cancelling ctx releases the ticker the same way Stop does.
func (a *AutoAdvancer) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := a.clock.NewTicker(a.interval)
	a.cancel = cancel
	a.done = done

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C():
				if runCtx.Err() != nil {
					return
				}
				if a.tick != nil {
					a.tick(runCtx)
				}
			}
		}
	}()
}

// Stop releases the ticker and waits for an in-flight tick to finish.
// It is safe to call Stop more than once.
func (a *AutoAdvancer) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the ticker is currently held.
func (a *AutoAdvancer) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}
