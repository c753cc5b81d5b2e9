package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// entryCost approximates key plus time.Time in bytes.
const entryCost = 32

// ExpiryCache maps shortcodes to their immutable expiry.
type ExpiryCache struct {
	store *ristretto.Cache
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Ratio  float64
}

// New sizes the cache to 2^sizePow2 bytes of cost.
func New(sizePow2 int) (*ExpiryCache, error) {
	if sizePow2 < 0 || sizePow2 > 62 {
		return nil, fmt.Errorf("cache size 2^%d out of range", sizePow2)
	}
	budget := max(1, int64(1)<<sizePow2)

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: max(1, 10*budget/entryCost),
		MaxCost:     budget,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ExpiryCache{store: store}, nil
}

func (c *ExpiryCache) Get(shortcode string) (time.Time, bool) {
	if v, ok := c.store.Get(shortcode); ok {
		return v.(time.Time), true
	}
	return time.Time{}, false
}

func (c *ExpiryCache) Set(shortcode string, expiresAt time.Time) {
	c.store.Set(shortcode, expiresAt, entryCost+int64(len(shortcode)))
}

// Wait blocks until buffered writes are applied.
func (c *ExpiryCache) Wait() { c.store.Wait() }

func (c *ExpiryCache) Close() { c.store.Close() }

func (c *ExpiryCache) Stats() Stats {
	m := c.store.Metrics
	return Stats{Hits: m.Hits(), Misses: m.Misses(), Ratio: m.Ratio()}
}
