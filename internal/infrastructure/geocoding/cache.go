package geocoding

import (
	"sync"

	"github.com/boardline/seller-allocation-service/internal/domain"
)

// CoordinateCache holds resolved coordinates for the process lifetime,
// keyed by the exact (postal code, country) pair. Writes are idempotent:
// a given key always maps to the same coordinate, so a racing duplicate
// lookup costs one redundant external call, never incorrect data.
type CoordinateCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinate
}

func NewCoordinateCache() *CoordinateCache {
	return &CoordinateCache{
		entries: make(map[string]domain.Coordinate),
	}
}

func cacheKey(postalCode, country string) string {
	return postalCode + "|" + country
}

func (c *CoordinateCache) Get(postalCode, country string) (*domain.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coord, ok := c.entries[cacheKey(postalCode, country)]
	if !ok {
		return nil, false
	}
	return &coord, true
}

func (c *CoordinateCache) Put(postalCode, country string, coord domain.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(postalCode, country)] = coord
}

func (c *CoordinateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops all cached coordinates. Intended for tests.
func (c *CoordinateCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.Coordinate)
}
