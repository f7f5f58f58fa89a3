package dashboard

import (
	"context"
	"sync"
	"time"
)

// manualClock hands out tickers that only fire when the test calls Tick.
type manualClock struct {
	mu        sync.Mutex
	tickers   []*manualTicker
	intervals []time.Duration
}

type manualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (c *manualClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	c.intervals = append(c.intervals, d)
	return t
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Tick delivers one tick to the most recent live ticker and reports whether
// a goroutine received it.
func (c *manualClock) Tick() bool {
	c.mu.Lock()
	var live *manualTicker
	for i := len(c.tickers) - 1; i >= 0; i-- {
		if !c.tickers[i].isStopped() {
			live = c.tickers[i]
			break
		}
	}
	c.mu.Unlock()
	if live == nil {
		return false
	}
	select {
	case live.ch <- time.Now():
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func (c *manualClock) created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type recordingHook struct {
	mu     sync.Mutex
	events []StateEvent
	err    error
}

func (h *recordingHook) StateChanged(_ context.Context, event StateEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHook) reasons() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	for i, event := range h.events {
		out[i] = event.Reason
	}
	return out
}

type recordingTelemetry struct {
	mu     sync.Mutex
	events []string
	last   map[string]map[string]any
}

func (r *recordingTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if r.last == nil {
		r.last = map[string]map[string]any{}
	}
	r.last[event] = payload
}

func (r *recordingTelemetry) payload(event string) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last[event]
}

func (r *recordingTelemetry) has(event string) bool {
	return r.payload(event) != nil
}
