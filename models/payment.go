package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment methods accepted at the counter.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
)

type CustomerPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CenterID  uuid.UUID `gorm:"type:uuid;index;not null"`
	SessionID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Method        string    `gorm:"not null"`
	TransactionID string    // required for electronic methods
	ReceiptNumber string    `gorm:"index"`
	PaymentDate   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	ReceivedBy    string    `gorm:"not null"`
	IsVerified    bool      `gorm:"default:false"`

	gorm.Model
}
