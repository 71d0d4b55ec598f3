package pricing

import "washpro-backend/models"

// VIP threshold: tier 4 and up.
const vipTier = 4

// LoyaltyTier maps a completed-booking count onto a tier from 0 to 5.
func LoyaltyTier(totalCompletedBookings int) int {
	switch {
	case totalCompletedBookings >= 50:
		return 5
	case totalCompletedBookings >= 30:
		return 4
	case totalCompletedBookings >= 20:
		return 3
	case totalCompletedBookings >= 10:
		return 2
	case totalCompletedBookings >= 5:
		return 1
	default:
		return 0
	}
}

// IsVIPCustomer reports whether the customer has reached VIP standing.
func IsVIPCustomer(c *models.Customer) bool {
	return LoyaltyTier(c.TotalCompletedBookings) >= vipTier
}

// IsEligibleForDiscount reports whether the customer has earned the loyalty
// discount. Any tier above zero qualifies, i.e. five completed washes.
func IsEligibleForDiscount(c *models.Customer) bool {
	return LoyaltyTier(c.TotalCompletedBookings) >= 1
}

// AverageSpendPerVisit returns the customer's mean spend per completed wash,
// or 0 for a customer with no completed washes.
func AverageSpendPerVisit(c *models.Customer) float64 {
	if c.TotalCompletedBookings == 0 {
		return 0
	}
	return c.TotalAmountSpent / float64(c.TotalCompletedBookings)
}
