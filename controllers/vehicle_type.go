// controllers/vehicle_type.go
package controllers

import (
	"errors"
	"net/http"
	"washpro-backend/config"
	"washpro-backend/models"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateVehicleTypeInput defines the expected JSON structure for creating a vehicle type
type CreateVehicleTypeInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier" binding:"required,gt=0"`
}

// UpdateVehicleTypeInput defines the expected JSON structure for updating a vehicle type
type UpdateVehicleTypeInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Multiplier  *float64 `json:"multiplier" binding:"omitempty,gt=0"`
	IsActive    *bool    `json:"isActive"`
}

// CreateVehicleType creates a new vehicle type for the center
func CreateVehicleType(c *gin.Context) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return
	}

	var input CreateVehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	vehicleType := models.VehicleType{
		ID:          uuid.New(),
		CenterID:    centerUUID,
		Name:        input.Name,
		Description: input.Description,
		Multiplier:  input.Multiplier,
		IsActive:    true,
	}

	if err := config.DB.Create(&vehicleType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle type")
		return
	}

	c.JSON(http.StatusCreated, vehicleType)
}

// GetVehicleTypes retrieves all vehicle types for the center
func GetVehicleTypes(c *gin.Context) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return
	}

	var vehicleTypes []models.VehicleType
	if err := config.DB.Where("center_id = ?", centerUUID).Find(&vehicleTypes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicle types")
		return
	}

	c.JSON(http.StatusOK, vehicleTypes)
}

// UpdateVehicleType updates an existing vehicle type
func UpdateVehicleType(c *gin.Context) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return
	}

	vehicleTypeID := c.Param("id")
	vehicleTypeUUID, err := uuid.Parse(vehicleTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type ID format")
		return
	}

	var input UpdateVehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vehicleType models.VehicleType
	if err := config.DB.Where("center_id = ? AND id = ?", centerUUID, vehicleTypeUUID).
		First(&vehicleType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		vehicleType.Name = *input.Name
	}
	if input.Description != nil {
		vehicleType.Description = *input.Description
	}
	if input.Multiplier != nil {
		vehicleType.Multiplier = *input.Multiplier
	}
	if input.IsActive != nil {
		vehicleType.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&vehicleType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicle type")
		return
	}

	// Multipliers may have changed; drop cached catalog lookups
	Catalog().Invalidate()

	c.JSON(http.StatusOK, vehicleType)
}

// DeleteVehicleType soft deletes a vehicle type
func DeleteVehicleType(c *gin.Context) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return
	}

	vehicleTypeID := c.Param("id")
	vehicleTypeUUID, err := uuid.Parse(vehicleTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type ID format")
		return
	}

	result := config.DB.Where("center_id = ? AND id = ?", centerUUID, vehicleTypeUUID).
		Delete(&models.VehicleType{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle type")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle type not found")
		return
	}

	Catalog().Invalidate()

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle type deleted successfully"})
}
