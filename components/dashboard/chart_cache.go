package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

// RenderCache memoizes rendered chart HTML per key.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// ChartCache keeps rendered charts for a fixed TTL. A non-positive TTL
// disables caching.
type ChartCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]chartEntry
}

type chartEntry struct {
	html    string
	expires time.Time
}

// NewChartCache builds a cache with the provided TTL.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]chartEntry),
	}
}

// GetOrRender returns the live entry for key or renders and stores a new one.
// Render errors are never cached.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}
	now := c.now()
	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && now.Before(entry.expires) {
		return entry.html, nil
	}

	html, err := render()
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.entries[key] = chartEntry{html: html, expires: now.Add(c.ttl)}
	c.mu.Unlock()
	return html, nil
}

// Prune drops expired entries and reports how many were removed.
func (c *ChartCache) Prune() int {
	if c == nil {
		return 0
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expires) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, expired or not.
func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// datasetKey fingerprints the plotted points so panels over different data
// never share an entry.
func datasetKey(points []ChartPoint) string {
	if len(points) == 0 {
		return "empty"
	}
	h := sha256.New()
	for _, point := range points {
		h.Write([]byte(point.Month))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(point.Events)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(point.Revenue, 'f', -1, 64)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)[:12])
}
