package pricing

import (
	"washpro-backend/models"

	"github.com/google/uuid"
)

// IsElectronicPayment classifies a payment method. Everything except cash
// needs a transaction reference before the payment counts as valid.
func IsElectronicPayment(method string) bool {
	switch method {
	case models.PaymentMethodMobileMoney, models.PaymentMethodCard, models.PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// ValidatePayment returns the list of problems that make a payment record
// unsubmittable. An empty list means the payment is valid. This is an
// advisory pre-submit check, not a lifecycle precondition.
func ValidatePayment(p *models.CustomerPayment) []string {
	var problems []string
	if p.Amount <= 0 {
		problems = append(problems, "amount must be greater than zero")
	}
	if p.SessionID == uuid.Nil {
		problems = append(problems, "session reference is required")
	}
	if p.CenterID == uuid.Nil {
		problems = append(problems, "center reference is required")
	}
	if p.ReceivedBy == "" {
		problems = append(problems, "receivedBy is required")
	}
	if IsElectronicPayment(p.Method) && p.TransactionID == "" {
		problems = append(problems, "transactionId is required for electronic payments")
	}
	return problems
}

// IsValidPayment is the boolean form of ValidatePayment.
func IsValidPayment(p *models.CustomerPayment) bool {
	return len(ValidatePayment(p)) == 0
}
