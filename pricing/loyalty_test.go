package pricing

import (
	"testing"
	"washpro-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestLoyaltyTier(t *testing.T) {
	tests := []struct {
		bookings int
		want     int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{29, 3},
		{30, 4},
		{49, 4},
		{50, 5},
		{120, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LoyaltyTier(tt.bookings), "bookings=%d", tt.bookings)
	}
}

func TestIsVIPCustomer(t *testing.T) {
	assert.True(t, IsVIPCustomer(&models.Customer{TotalCompletedBookings: 30}))
	assert.True(t, IsVIPCustomer(&models.Customer{TotalCompletedBookings: 75}))
	assert.False(t, IsVIPCustomer(&models.Customer{TotalCompletedBookings: 4}))
	assert.False(t, IsVIPCustomer(&models.Customer{TotalCompletedBookings: 29}))
}

func TestIsEligibleForDiscount(t *testing.T) {
	assert.False(t, IsEligibleForDiscount(&models.Customer{TotalCompletedBookings: 4}))
	assert.True(t, IsEligibleForDiscount(&models.Customer{TotalCompletedBookings: 5}))
}

func TestAverageSpendPerVisit(t *testing.T) {
	// No completed washes must not divide by zero
	assert.Equal(t, 0.0, AverageSpendPerVisit(&models.Customer{}))

	c := &models.Customer{TotalCompletedBookings: 8, TotalAmountSpent: 1200}
	assert.Equal(t, 150.0, AverageSpendPerVisit(c))
}
