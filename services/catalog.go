// services/catalog.go
package services

import (
	"washpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DBCatalog resolves base prices and vehicle multipliers from the database.
// It is normally wrapped in a pricing.CatalogCache.
type DBCatalog struct {
	db *gorm.DB
}

func NewDBCatalog(db *gorm.DB) *DBCatalog {
	return &DBCatalog{db: db}
}

func (c *DBCatalog) BasePrice(serviceID uuid.UUID) (float64, error) {
	var service models.WashService
	if err := c.db.First(&service, "id = ?", serviceID).Error; err != nil {
		return 0, err
	}
	return service.BasePrice, nil
}

func (c *DBCatalog) VehicleMultiplier(vehicleTypeID uuid.UUID) (float64, error) {
	var vehicleType models.VehicleType
	if err := c.db.First(&vehicleType, "id = ?", vehicleTypeID).Error; err != nil {
		return 0, err
	}
	return vehicleType.Multiplier, nil
}
