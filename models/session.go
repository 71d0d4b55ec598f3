package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WashSession struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CenterID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	VehicleTypeID uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"` // optional link to a stored customer record
	CustomerPhone string     `gorm:"not null;index"`
	CustomerName  string

	VehiclePlate string `gorm:"not null"`
	VehicleBrand string
	VehicleColor string

	Price         float64 `gorm:"type:decimal(10,2);not null"`
	AmountPaid    float64 `gorm:"type:decimal(10,2);default:0.0"`
	PaymentMethod string
	TransactionID string

	IsPaid      bool `gorm:"default:false"`
	IsCompleted bool `gorm:"default:false"`
	IsCancelled bool `gorm:"default:false"`

	ScheduledStart time.Time `gorm:"not null"`
	ActualStart    *time.Time
	ActualEnd      *time.Time

	CancellationReason string
	DurationMinutes    int // negative on pre-start cancellation: minutes lost until the scheduled slot
	Rating             int
	Feedback           string

	Payment *CustomerPayment `gorm:"foreignKey:SessionID"`

	gorm.Model
}

// IsScheduled reports whether the session is still waiting to start.
func (s *WashSession) IsScheduled() bool {
	return s.ActualStart == nil && !s.IsCancelled && !s.IsCompleted
}

// IsInProgress reports whether the wash has started but not yet finished.
func (s *WashSession) IsInProgress() bool {
	return s.ActualStart != nil && s.ActualEnd == nil && !s.IsCancelled && !s.IsCompleted
}

// IsTerminal reports whether the session can no longer transition.
func (s *WashSession) IsTerminal() bool {
	return s.IsCompleted || s.IsCancelled
}
