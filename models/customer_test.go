package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementBookings(t *testing.T) {
	c := &Customer{TotalCompletedBookings: 3, TotalAmountSpent: 450}
	visit := time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)

	c.IncrementBookings(150, visit)

	assert.Equal(t, 4, c.TotalCompletedBookings)
	assert.Equal(t, 600.0, c.TotalAmountSpent)
	require.NotNil(t, c.LastVisit)
	assert.Equal(t, visit, *c.LastVisit)
}

func TestAddVehiclePlateDeduplicates(t *testing.T) {
	c := &Customer{}

	c.AddVehiclePlate("KBZ123A")
	c.AddVehiclePlate("KCA456B")
	c.AddVehiclePlate("KBZ123A")
	c.AddVehiclePlate("")

	assert.Equal(t, StringArray{"KBZ123A", "KCA456B"}, c.VehiclePlates)
}
