// controllers/payment.go
package controllers

import (
	"errors"
	"net/http"
	"washpro-backend/config"
	"washpro-backend/models"
	"washpro-backend/pricing"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPayments retrieves all payment records for the center
func GetPayments(c *gin.Context) {
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

	var payments []models.CustomerPayment
	if err := config.DB.Where("center_id = ?", centerUUID).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// VerifyPayment marks a payment record as verified. Electronic payments
// cannot be verified without a transaction reference.
func VerifyPayment(c *gin.Context) {
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

	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var payment models.CustomerPayment
	if err := config.DB.Where("center_id = ? AND id = ?", centerUUID, paymentUUID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if problems := pricing.ValidatePayment(&payment); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": problems})
		return
	}

	payment.IsVerified = true
	if err := config.DB.Save(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}
