package controllers

import (
	"fmt"
	"net/http"
	"time"
	"washpro-backend/config"
	"washpro-backend/lifecycle"
	"washpro-backend/models"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecentSession struct {
	CustomerName string  `json:"customerName"`
	VehiclePlate string  `json:"vehiclePlate"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	When         string  `json:"when"` // e.g. "Today", "Yesterday"
}

func GetDashboardOverview(c *gin.Context) {
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

	now := time.Now()
	startOfDay := utils.BeginningOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Total customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).
		Where("center_id = ? AND deleted_at IS NULL", centerUUID).Count(&totalCustomers)

	// Today's sessions
	var todaySessions int64
	config.DB.Model(&models.WashSession{}).
		Where("center_id = ? AND scheduled_start >= ? AND scheduled_start < ? AND deleted_at IS NULL",
			centerUUID, startOfDay, startOfDay.AddDate(0, 0, 1)).
		Count(&todaySessions)

	// Sessions waiting in the queue right now
	var inProgress int64
	config.DB.Model(&models.WashSession{}).
		Where("center_id = ? AND actual_start IS NOT NULL AND actual_end IS NULL AND is_cancelled = false AND deleted_at IS NULL",
			centerUUID).
		Count(&inProgress)

	// Revenue: paid amounts, daily and monthly
	var dailyRevenue, monthlyRevenue float64
	config.DB.Model(&models.WashSession{}).
		Where("center_id = ? AND is_paid = true AND is_cancelled = false AND updated_at >= ? AND deleted_at IS NULL",
			centerUUID, startOfDay).
		Select("COALESCE(SUM(amount_paid), 0)").Scan(&dailyRevenue)
	config.DB.Model(&models.WashSession{}).
		Where("center_id = ? AND is_paid = true AND is_cancelled = false AND updated_at >= ? AND deleted_at IS NULL",
			centerUUID, firstOfMonth).
		Select("COALESCE(SUM(amount_paid), 0)").Scan(&monthlyRevenue)

	// This month's expenses
	var monthlyExpenses float64
	config.DB.Model(&models.Expense{}).
		Where("center_id = ? AND expense_date >= ? AND deleted_at IS NULL", centerUUID, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyExpenses)

	// Recent sessions (last 5)
	var sessions []models.WashSession
	config.DB.Where("center_id = ?", centerUUID).
		Order("scheduled_start DESC").Limit(5).Find(&sessions)

	recent := make([]RecentSession, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		daysAgo := utils.DaysBetween(s.ScheduledStart, now)
		var when string
		switch daysAgo {
		case 0:
			when = "Today"
		case 1:
			when = "Yesterday"
		default:
			when = fmt.Sprintf("%d days ago", daysAgo)
		}
		recent = append(recent, RecentSession{
			CustomerName: s.CustomerName,
			VehiclePlate: s.VehiclePlate,
			Status:       lifecycle.Status(s),
			Amount:       s.AmountPaid,
			When:         when,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":  totalCustomers,
		"todaySessions":   todaySessions,
		"inProgress":      inProgress,
		"dailyRevenue":    dailyRevenue,
		"monthlyRevenue":  monthlyRevenue,
		"monthlyExpenses": monthlyExpenses,
		"netMonthly":      monthlyRevenue - monthlyExpenses,
		"recentSessions":  recent,
	})
}
