package rates

import (
	"sync"
	"time"
)

// Cache holds USD-based rates. A TTL of zero means entries never go stale.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	clock func() time.Time
	rates map[string]cachedRate
}

type cachedRate struct {
	value     float64
	fetchedAt time.Time
}

func NewCache(ttl time.Duration, clock func() time.Time) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{
		ttl:   ttl,
		clock: clock,
		rates: make(map[string]cachedRate),
	}
}

// Get returns the cached rate and whether it is still fresh.
func (c *Cache) Get(code string) (rate float64, fresh bool, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.rates[code]
	if !ok {
		return 0, false, false
	}
	fresh = c.ttl <= 0 || c.clock().Sub(r.fetchedAt) < c.ttl
	return r.value, fresh, true
}

// Store replaces cached values; non-positive rates are ignored.
func (c *Cache) Store(rates map[string]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	for code, v := range rates {
		if v <= 0 {
			continue
		}
		c.rates[code] = cachedRate{value: v, fetchedAt: now}
	}
}
