package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CenterID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Phone string `gorm:"not null;uniqueIndex:idx_center_phone,priority:2"`
	Email string
	Notes string

	TotalCompletedBookings int         `gorm:"default:0"`
	TotalAmountSpent       float64     `gorm:"type:decimal(10,2);default:0.0"`
	LastVisit              *time.Time
	VehiclePlates          StringArray `gorm:"type:jsonb;default:'[]'"`
	IsActive               bool        `gorm:"default:true"`

	Sessions []WashSession `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

// IncrementBookings records one completed session against the customer's
// loyalty counters. Callers persist the change themselves.
func (c *Customer) IncrementBookings(amountPaid float64, visitedAt time.Time) {
	c.TotalCompletedBookings++
	c.TotalAmountSpent += amountPaid
	c.LastVisit = &visitedAt
}

// AddVehiclePlate registers a plate for the customer, ignoring duplicates.
func (c *Customer) AddVehiclePlate(plate string) {
	if plate == "" {
		return
	}
	for _, p := range c.VehiclePlates {
		if p == plate {
			return
		}
	}
	c.VehiclePlates = append(c.VehiclePlates, plate)
}

// StringArray stores a list of strings as a JSONB column
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}
