package pricing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Catalog is the external price reference: service base prices and
// vehicle-type multipliers live outside this engine.
type Catalog interface {
	BasePrice(serviceID uuid.UUID) (float64, error)
	VehicleMultiplier(vehicleTypeID uuid.UUID) (float64, error)
}

type cacheEntry struct {
	value    float64
	cachedAt time.Time
}

// CatalogCache memoizes catalog lookups with a TTL. The clock is injected so
// expiry is testable, and Invalidate drops everything after catalog edits.
type CatalogCache struct {
	source Catalog
	ttl    time.Duration
	now    func() time.Time

	mu          sync.RWMutex
	basePrices  map[uuid.UUID]cacheEntry
	multipliers map[uuid.UUID]cacheEntry
}

func NewCatalogCache(source Catalog, ttl time.Duration) *CatalogCache {
	return NewCatalogCacheWithClock(source, ttl, time.Now)
}

func NewCatalogCacheWithClock(source Catalog, ttl time.Duration, now func() time.Time) *CatalogCache {
	return &CatalogCache{
		source:      source,
		ttl:         ttl,
		now:         now,
		basePrices:  make(map[uuid.UUID]cacheEntry),
		multipliers: make(map[uuid.UUID]cacheEntry),
	}
}

func (c *CatalogCache) BasePrice(serviceID uuid.UUID) (float64, error) {
	if v, ok := c.lookup(c.basePrices, serviceID); ok {
		return v, nil
	}
	v, err := c.source.BasePrice(serviceID)
	if err != nil {
		return 0, err
	}
	c.store(c.basePrices, serviceID, v)
	return v, nil
}

func (c *CatalogCache) VehicleMultiplier(vehicleTypeID uuid.UUID) (float64, error) {
	if v, ok := c.lookup(c.multipliers, vehicleTypeID); ok {
		return v, nil
	}
	v, err := c.source.VehicleMultiplier(vehicleTypeID)
	if err != nil {
		return 0, err
	}
	c.store(c.multipliers, vehicleTypeID, v)
	return v, nil
}

// Invalidate drops all cached prices. Called after catalog CRUD.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	c.basePrices = make(map[uuid.UUID]cacheEntry)
	c.multipliers = make(map[uuid.UUID]cacheEntry)
	c.mu.Unlock()
}

func (c *CatalogCache) lookup(m map[uuid.UUID]cacheEntry, id uuid.UUID) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := m[id]
	if !ok || c.now().Sub(e.cachedAt) >= c.ttl {
		return 0, false
	}
	return e.value, true
}

func (c *CatalogCache) store(m map[uuid.UUID]cacheEntry, id uuid.UUID, v float64) {
	c.mu.Lock()
	m[id] = cacheEntry{value: v, cachedAt: c.now()}
	c.mu.Unlock()
}
