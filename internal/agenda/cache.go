package agenda

import (
	"context"
	"sync"
	"time"

	"github.com/clinicwave/agenda-ops/internal/amei"
)

// directoryCache is a single-entry TTL memo for the professional directory.
// There is exactly one directory per unit, so the cache has no key. Errors
// are never cached; only slot fetches reflect live state and bypass caching
// entirely.
type directoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	value     []amei.Professional
	fetchedAt time.Time
}

func newDirectoryCache(ttl time.Duration) *directoryCache {
	return &directoryCache{ttl: ttl, now: time.Now}
}

// get returns the cached directory when it is still fresh, otherwise invokes
// fetch and memoizes the result. A non-positive TTL disables caching.
func (c *directoryCache) get(ctx context.Context, fetch func(context.Context) ([]amei.Professional, error)) ([]amei.Professional, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && c.value != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.value = value
	c.fetchedAt = c.now()
	return value, nil
}
