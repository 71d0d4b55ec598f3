package controllers

import (
	"net/http"
	"washpro-backend/config"
	"washpro-backend/models"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateCenterInput struct {
	Name               *string  `json:"name"`
	Address            *string  `json:"address"`
	Phone              *string  `json:"phone"`
	LoyaltyDiscountPct *float64 `json:"loyaltyDiscountPct" binding:"omitempty,min=0,max=100"`
}

type UpdateWorkingHoursInput struct {
	WorkingHours models.JSONB `json:"workingHours" binding:"required"`
}

type UpdateNotificationsInput struct {
	ScheduleReminders     *bool `json:"scheduleReminders"`
	SMSNotifications      *bool `json:"smsNotifications"`
	WhatsAppNotifications *bool `json:"whatsAppNotifications"`
}

func GetProfile(c *gin.Context) {
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

	var center models.Center
	if err := config.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		return
	}

	c.JSON(http.StatusOK, center)
}

func UpdateCenterProfile(c *gin.Context) {
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

	var input UpdateCenterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var center models.Center
	if err := config.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		return
	}

	if input.Name != nil {
		center.Name = *input.Name
	}
	if input.Address != nil {
		center.Address = *input.Address
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		center.Phone = *input.Phone
	}
	if input.LoyaltyDiscountPct != nil {
		center.LoyaltyDiscountPct = *input.LoyaltyDiscountPct
	}

	if err := config.DB.Save(&center).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update center")
		return
	}

	c.JSON(http.StatusOK, center)
}

func UpdateWorkingHours(c *gin.Context) {
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

	var input UpdateWorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Model(&models.Center{}).Where("id = ?", centerUUID).
		Update("working_hours", input.WorkingHours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

func UpdateNotifications(c *gin.Context) {
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

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var center models.Center
	if err := config.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Center not found")
		return
	}

	if input.ScheduleReminders != nil {
		center.ScheduleReminders = *input.ScheduleReminders
	}
	if input.SMSNotifications != nil {
		center.SMSNotifications = *input.SMSNotifications
	}
	if input.WhatsAppNotifications != nil {
		center.WhatsAppNotifications = *input.WhatsAppNotifications
	}

	if err := config.DB.Save(&center).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, center)
}
