package pricing

// PriceCalculationResult is a derived value object. FinalPrice is always
// rebuilt from SubTotal and LoyaltyDiscount; it is never set directly.
type PriceCalculationResult struct {
	BasePrice              float64 `json:"basePrice"`
	VehicleMultiplier      float64 `json:"vehicleMultiplier"`
	SubTotal               float64 `json:"subTotal"`
	LoyaltyDiscount        float64 `json:"loyaltyDiscount"`
	FinalPrice             float64 `json:"finalPrice"`
	LoyaltyDiscountApplied bool    `json:"loyaltyDiscountApplied"`
	CustomerWashCount      int     `json:"customerWashCount"`
}

// Calculate combines a catalog base price with a vehicle-size multiplier.
// The result carries no discount; apply one with ApplyLoyaltyDiscount.
// Inputs are not validated here; callers guard against negative values.
func Calculate(basePrice, vehicleMultiplier float64) PriceCalculationResult {
	subTotal := basePrice * vehicleMultiplier
	return PriceCalculationResult{
		BasePrice:         basePrice,
		VehicleMultiplier: vehicleMultiplier,
		SubTotal:          subTotal,
		FinalPrice:        recompute(subTotal, 0),
	}
}

// ApplyLoyaltyDiscount returns a copy of the result with the discount applied
// and the final price rebuilt. discountPercentage is expected in [0,100];
// range checking is the caller's responsibility.
func ApplyLoyaltyDiscount(r PriceCalculationResult, discountPercentage float64) PriceCalculationResult {
	r.LoyaltyDiscount = r.SubTotal * (discountPercentage / 100)
	r.LoyaltyDiscountApplied = true
	r.FinalPrice = recompute(r.SubTotal, r.LoyaltyDiscount)
	return r
}

// RemoveLoyaltyDiscount reverses ApplyLoyaltyDiscount.
func RemoveLoyaltyDiscount(r PriceCalculationResult) PriceCalculationResult {
	r.LoyaltyDiscount = 0
	r.LoyaltyDiscountApplied = false
	r.FinalPrice = recompute(r.SubTotal, 0)
	return r
}

func recompute(subTotal, discount float64) float64 {
	return subTotal - discount
}
