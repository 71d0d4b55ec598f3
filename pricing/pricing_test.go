package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	result := Calculate(100, 1.5)

	assert.Equal(t, 100.0, result.BasePrice)
	assert.Equal(t, 1.5, result.VehicleMultiplier)
	assert.Equal(t, 150.0, result.SubTotal)
	assert.Equal(t, 150.0, result.FinalPrice)
	assert.Equal(t, 0.0, result.LoyaltyDiscount)
	assert.False(t, result.LoyaltyDiscountApplied)
}

func TestApplyLoyaltyDiscount(t *testing.T) {
	result := ApplyLoyaltyDiscount(Calculate(100, 1.5), 10)

	assert.Equal(t, 15.0, result.LoyaltyDiscount)
	assert.Equal(t, 135.0, result.FinalPrice)
	assert.True(t, result.LoyaltyDiscountApplied)
	// Inputs untouched
	assert.Equal(t, 150.0, result.SubTotal)
}

func TestRemoveLoyaltyDiscount(t *testing.T) {
	discounted := ApplyLoyaltyDiscount(Calculate(100, 1.5), 10)
	restored := RemoveLoyaltyDiscount(discounted)

	assert.Equal(t, 0.0, restored.LoyaltyDiscount)
	assert.Equal(t, 150.0, restored.FinalPrice)
	assert.False(t, restored.LoyaltyDiscountApplied)
}

func TestFinalPriceAlwaysRederived(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		mult      float64
		discount  float64
		want      float64
	}{
		{"no discount", 200, 1, 0, 200},
		{"full discount", 200, 1, 100, 0},
		{"half off suv", 80, 2, 50, 80},
		{"zero price", 0, 1.5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyLoyaltyDiscount(Calculate(tt.basePrice, tt.mult), tt.discount)
			assert.InDelta(t, tt.want, result.FinalPrice, 1e-9)
			assert.InDelta(t, result.SubTotal-result.LoyaltyDiscount, result.FinalPrice, 1e-9)
		})
	}
}

func TestApplyThenRemoveRoundTrips(t *testing.T) {
	original := Calculate(75, 1.25)
	roundTripped := RemoveLoyaltyDiscount(ApplyLoyaltyDiscount(original, 20))
	assert.Equal(t, original, roundTripped)
}
