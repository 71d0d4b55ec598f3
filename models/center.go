package models

import (
	"github.com/google/uuid"
)

type Center struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                  string    `gorm:"not null"`
	Address               string
	Phone                 string
	WorkingHours          JSONB   `gorm:"type:jsonb;default:'{}'"`
	LoyaltyDiscountPct    float64 `gorm:"type:decimal(5,2);default:10.0"`
	ScheduleReminders     bool    `gorm:"default:true"`
	SMSNotifications      bool    `gorm:"default:false"`
	WhatsAppNotifications bool    `gorm:"default:false"`

	Users        []User        `gorm:"foreignKey:CenterID"`
	Customers    []Customer    `gorm:"foreignKey:CenterID"`
	Services     []WashService `gorm:"foreignKey:CenterID"`
	VehicleTypes []VehicleType `gorm:"foreignKey:CenterID"`
	Sessions     []WashSession `gorm:"foreignKey:CenterID"`
	Expenses     []Expense     `gorm:"foreignKey:CenterID"`
}
