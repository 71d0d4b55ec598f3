package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CenterID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description string    `gorm:"not null"`
	Category    string    `gorm:"default:'General'"` // supplies, utilities, salaries, ...
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	ExpenseDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	Notes       string

	gorm.Model
}
