package pricing

import (
	"testing"
	"washpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsElectronicPayment(t *testing.T) {
	assert.False(t, IsElectronicPayment(models.PaymentMethodCash))
	assert.True(t, IsElectronicPayment(models.PaymentMethodMobileMoney))
	assert.True(t, IsElectronicPayment(models.PaymentMethodCard))
	assert.True(t, IsElectronicPayment(models.PaymentMethodBankTransfer))
	assert.False(t, IsElectronicPayment("voucher"))
}

func validPayment() *models.CustomerPayment {
	return &models.CustomerPayment{
		ID:         uuid.New(),
		CenterID:   uuid.New(),
		SessionID:  uuid.New(),
		Amount:     150,
		Method:     models.PaymentMethodCash,
		ReceivedBy: "attendant-1",
	}
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CustomerPayment)
		valid  bool
	}{
		{"cash payment", func(p *models.CustomerPayment) {}, true},
		{"mobile money without reference", func(p *models.CustomerPayment) {
			p.Method = models.PaymentMethodMobileMoney
		}, false},
		{"mobile money with reference", func(p *models.CustomerPayment) {
			p.Method = models.PaymentMethodMobileMoney
			p.TransactionID = "MM-99"
		}, true},
		{"zero amount", func(p *models.CustomerPayment) { p.Amount = 0 }, false},
		{"missing session", func(p *models.CustomerPayment) { p.SessionID = uuid.Nil }, false},
		{"missing center", func(p *models.CustomerPayment) { p.CenterID = uuid.Nil }, false},
		{"missing receiver", func(p *models.CustomerPayment) { p.ReceivedBy = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(p)
			assert.Equal(t, tt.valid, IsValidPayment(p))
			if tt.valid {
				assert.Empty(t, ValidatePayment(p))
			} else {
				assert.NotEmpty(t, ValidatePayment(p))
			}
		})
	}
}
