package models

import (
	"github.com/google/uuid"
)

type VehicleType struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CenterID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"` // e.g. "Sedan", "SUV", "Truck"
	Description string
	Multiplier  float64 `gorm:"type:decimal(5,2);not null;default:1.0"`
	IsActive    bool    `gorm:"default:true"`

	Sessions []WashSession `gorm:"foreignKey:VehicleTypeID"`
}
