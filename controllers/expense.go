// controllers/expense.go
package controllers

import (
	"errors"
	"net/http"
	"time"
	"washpro-backend/config"
	"washpro-backend/models"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateExpenseInput defines the expected JSON structure for creating an expense
type CreateExpenseInput struct {
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	ExpenseDate *time.Time `json:"expenseDate"`
	Notes       string     `json:"notes"`
}

// UpdateExpenseInput defines the expected JSON structure for updating an expense
type UpdateExpenseInput struct {
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	ExpenseDate *time.Time `json:"expenseDate"`
	Notes       *string    `json:"notes"`
}

// CreateExpense records a new expense for the center
func CreateExpense(c *gin.Context) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return
	}

	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := models.Expense{
		ID:              uuid.New(),
		CenterID:        centerUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Description:     input.Description,
		Category:        input.Category,
		Amount:          input.Amount,
		ExpenseDate:     expenseDate,
		Notes:           input.Notes,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves the center's expenses, optionally bounded by
// ?from=YYYY-MM-DD&to=YYYY-MM-DD
func GetExpenses(c *gin.Context) {
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

	query := config.DB.Where("center_id = ?", centerUUID)

	if from := c.Query("from"); from != "" {
		day, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("expense_date >= ?", utils.BeginningOfDay(day))
	}
	if to := c.Query("to"); to != "" {
		day, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("expense_date <= ?", utils.EndOfDay(day))
	}

	var expenses []models.Expense
	if err := query.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense updates an existing expense
func UpdateExpense(c *gin.Context) {
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

	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var input UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var expense models.Expense
	if err := config.DB.Where("center_id = ? AND id = ?", centerUUID, expenseUUID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense soft deletes an expense
func DeleteExpense(c *gin.Context) {
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

	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	result := config.DB.Where("center_id = ? AND id = ?", centerUUID, expenseUUID).
		Delete(&models.Expense{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
