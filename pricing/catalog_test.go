package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	prices      map[uuid.UUID]float64
	multipliers map[uuid.UUID]float64
	calls       int
}

func (f *fakeCatalog) BasePrice(serviceID uuid.UUID) (float64, error) {
	f.calls++
	v, ok := f.prices[serviceID]
	if !ok {
		return 0, errors.New("service not found")
	}
	return v, nil
}

func (f *fakeCatalog) VehicleMultiplier(vehicleTypeID uuid.UUID) (float64, error) {
	f.calls++
	v, ok := f.multipliers[vehicleTypeID]
	if !ok {
		return 0, errors.New("vehicle type not found")
	}
	return v, nil
}

func TestCatalogCacheHitsWithinTTL(t *testing.T) {
	serviceID := uuid.New()
	source := &fakeCatalog{prices: map[uuid.UUID]float64{serviceID: 100}}

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewCatalogCacheWithClock(source, 5*time.Minute, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		v, err := cache.BasePrice(serviceID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, v)
	}
	assert.Equal(t, 1, source.calls)
}

func TestCatalogCacheExpires(t *testing.T) {
	serviceID := uuid.New()
	source := &fakeCatalog{prices: map[uuid.UUID]float64{serviceID: 100}}

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewCatalogCacheWithClock(source, 5*time.Minute, func() time.Time { return now })

	_, err := cache.BasePrice(serviceID)
	require.NoError(t, err)

	// Price changes at the source; the stale value survives until the TTL
	source.prices[serviceID] = 120
	v, _ := cache.BasePrice(serviceID)
	assert.Equal(t, 100.0, v)

	now = now.Add(5 * time.Minute)
	v, _ = cache.BasePrice(serviceID)
	assert.Equal(t, 120.0, v)
	assert.Equal(t, 2, source.calls)
}

func TestCatalogCacheInvalidate(t *testing.T) {
	vehicleTypeID := uuid.New()
	source := &fakeCatalog{multipliers: map[uuid.UUID]float64{vehicleTypeID: 1.5}}

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewCatalogCacheWithClock(source, time.Hour, func() time.Time { return now })

	_, err := cache.VehicleMultiplier(vehicleTypeID)
	require.NoError(t, err)

	source.multipliers[vehicleTypeID] = 2.0
	cache.Invalidate()

	v, err := cache.VehicleMultiplier(vehicleTypeID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestCatalogCacheDoesNotCacheErrors(t *testing.T) {
	source := &fakeCatalog{}
	cache := NewCatalogCache(source, time.Minute)

	missing := uuid.New()
	_, err := cache.BasePrice(missing)
	assert.Error(t, err)

	source.prices = map[uuid.UUID]float64{missing: 80}
	v, err := cache.BasePrice(missing)
	require.NoError(t, err)
	assert.Equal(t, 80.0, v)
}
