// controllers/session.go
package controllers

import (
	"errors"
	"net/http"
	"sync"
	"time"
	"washpro-backend/config"
	"washpro-backend/lifecycle"
	"washpro-backend/models"
	"washpro-backend/pricing"
	"washpro-backend/services"
	"washpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	sessionManager = lifecycle.NewManager()
	customerLocks  = lifecycle.NewCustomerLocker()

	catalogCache *pricing.CatalogCache
	catalogOnce  sync.Once

	notifier     *services.NotificationService
	notifierOnce sync.Once
)

// Catalog returns the shared price-lookup cache, fronting the service and
// vehicle-type tables with a 5 minute TTL.
func Catalog() *pricing.CatalogCache {
	catalogOnce.Do(func() {
		catalogCache = pricing.NewCatalogCache(services.NewDBCatalog(config.DB), 5*time.Minute)
	})
	return catalogCache
}

// Notifier returns the shared SMS notification service.
func Notifier() *services.NotificationService {
	notifierOnce.Do(func() {
		notifier = services.NewNotificationService(config.DB)
	})
	return notifier
}

// CreateSessionInput defines the expected JSON structure for booking a wash session
type CreateSessionInput struct {
	ServiceID            uuid.UUID  `json:"serviceId" binding:"required"`
	VehicleTypeID        uuid.UUID  `json:"vehicleTypeId" binding:"required"`
	CustomerPhone        string     `json:"customerPhone" binding:"required"`
	CustomerName         string     `json:"customerName"`
	VehiclePlate         string     `json:"vehiclePlate" binding:"required"`
	VehicleBrand         string     `json:"vehicleBrand"`
	VehicleColor         string     `json:"vehicleColor"`
	ScheduledStart       *time.Time `json:"scheduledStart"`
	ApplyLoyaltyDiscount bool       `json:"applyLoyaltyDiscount"`
}

// CompleteSessionInput carries the completion details
type CompleteSessionInput struct {
	DurationMinutes int    `json:"durationMinutes"`
	Rating          int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Feedback        string `json:"feedback"`
}

// CancelSessionInput carries the cancellation reason
type CancelSessionInput struct {
	Reason string `json:"reason" binding:"required"`
}

// PaySessionInput carries payment details for a session
type PaySessionInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required,oneof=cash mobile_money card bank_transfer"`
	TransactionID string  `json:"transactionId"`
	ReceivedBy    string  `json:"receivedBy" binding:"required"`
}

// DiscountInput toggles the loyalty discount before payment
type DiscountInput struct {
	Apply bool `json:"apply"`
}

// CreateSession books a wash: it resolves the customer by phone (creating one
// on first booking), prices the wash once, and stores the scheduled session.
func CreateSession(c *gin.Context) {
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

	var input CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidatePlate(input.VehiclePlate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle plate format")
		return
	}
	plate := utils.NormalizePlate(input.VehiclePlate)
	phone := utils.NormalizePhone(input.CustomerPhone)

	// Resolve the customer by phone; first booking creates the record
	var customer models.Customer
	err = config.DB.Where("center_id = ? AND phone = ?", centerUUID, phone).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{
			ID:              uuid.New(),
			CenterID:        centerUUID,
			CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
			Name:            input.CustomerName,
			Phone:           phone,
			IsActive:        true,
		}
		customer.AddVehiclePlate(plate)
		if err := config.DB.Create(&customer).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var center models.Center
	if err := config.DB.First(&center, "id = ?", centerUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Price the session once at booking time
	basePrice, err := Catalog().BasePrice(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		return
	}
	multiplier, err := Catalog().VehicleMultiplier(input.VehicleTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Vehicle type not found")
		return
	}

	result := pricing.Calculate(basePrice, multiplier)
	result.CustomerWashCount = customer.TotalCompletedBookings
	if input.ApplyLoyaltyDiscount && pricing.IsEligibleForDiscount(&customer) {
		result = pricing.ApplyLoyaltyDiscount(result, center.LoyaltyDiscountPct)
	}

	scheduledStart := time.Now()
	if input.ScheduledStart != nil {
		scheduledStart = *input.ScheduledStart
	}

	session := models.WashSession{
		ID:              uuid.New(),
		CenterID:        centerUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		ServiceID:       input.ServiceID,
		VehicleTypeID:   input.VehicleTypeID,
		CustomerID:      &customer.ID,
		CustomerPhone:   phone,
		CustomerName:    customer.Name,
		VehiclePlate:    plate,
		VehicleBrand:    input.VehicleBrand,
		VehicleColor:    input.VehicleColor,
		Price:           result.FinalPrice,
		ScheduledStart:  scheduledStart,
	}

	// Pre-submit gate: report every violated constraint at once
	if verrs := lifecycle.Validate(&session); verrs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	if err := config.DB.Create(&session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	go Notifier().SendBookingConfirmation(&center, &session)

	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"pricing": result,
		"status":  lifecycle.Status(&session),
	})
}

// GetSessions retrieves the center's sessions, optionally filtered by status
// or by scheduled day (?date=2006-01-02)
func GetSessions(c *gin.Context) {
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

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("scheduled_start >= ? AND scheduled_start < ?",
			utils.BeginningOfDay(day), utils.BeginningOfDay(day).AddDate(0, 0, 1))
	}

	switch c.Query("status") {
	case lifecycle.StatusCancelled:
		query = query.Where("is_cancelled = true")
	case lifecycle.StatusCompleted:
		query = query.Where("is_completed = true AND is_cancelled = false")
	case lifecycle.StatusInProgress:
		query = query.Where("actual_start IS NOT NULL AND actual_end IS NULL AND is_cancelled = false AND is_completed = false")
	case lifecycle.StatusPaid:
		// In-progress outranks paid in the derived status, so exclude it here
		query = query.Where("is_paid = true AND is_cancelled = false AND is_completed = false AND actual_start IS NULL")
	case lifecycle.StatusUnpaid:
		query = query.Where("is_paid = false AND is_cancelled = false AND is_completed = false AND actual_start IS NULL")
	}

	var sessions []models.WashSession
	if err := query.Order("scheduled_start DESC").Find(&sessions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession retrieves one session with its derived display status
func GetSession(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"status":  lifecycle.Status(session),
	})
}

// StartSession moves a scheduled session to in-progress
func StartSession(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	if err := sessionManager.Start(session); err != nil {
		respondTransitionError(c, err)
		return
	}

	if err := config.DB.Save(session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "status": lifecycle.Status(session)})
}

// CompleteSession finishes an in-progress session and credits the customer's
// loyalty counters in the same transaction.
func CompleteSession(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	var input CompleteSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sessionManager.Complete(session, input.DurationMinutes, input.Rating, input.Feedback); err != nil {
		respondTransitionError(c, err)
		return
	}

	// Serialize counter updates per customer so concurrent completions for
	// the same phone cannot drop an increment.
	unlock := customerLocks.Lock(session.CustomerPhone)
	defer unlock()

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(session).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	var customer *models.Customer
	if session.CustomerID != nil {
		customer = &models.Customer{}
		if err := tx.First(customer, "id = ?", *session.CustomerID).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load customer")
			return
		}
		customer.AddVehiclePlate(session.VehiclePlate)
		if err := tx.Model(&models.Customer{}).Where("id = ?", *session.CustomerID).
			Updates(map[string]interface{}{
				"total_completed_bookings": gorm.Expr("total_completed_bookings + ?", 1),
				"total_amount_spent":       gorm.Expr("total_amount_spent + ?", session.AmountPaid),
				"last_visit":               session.ActualEnd,
				"vehicle_plates":           customer.VehiclePlates,
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	response := gin.H{"session": session, "status": lifecycle.Status(session)}
	if customer != nil {
		// Mirror the persisted increments for the response
		customer.IncrementBookings(session.AmountPaid, *session.ActualEnd)
		response["loyalty"] = gin.H{
			"tier":  pricing.LoyaltyTier(customer.TotalCompletedBookings),
			"isVip": pricing.IsVIPCustomer(customer),
		}
	}

	c.JSON(http.StatusOK, response)
}

// CancelSession aborts a scheduled or in-progress session
func CancelSession(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	var input CancelSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sessionManager.Cancel(session, input.Reason); err != nil {
		respondTransitionError(c, err)
		return
	}

	if err := config.DB.Save(session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "status": lifecycle.Status(session)})
}

// PaySession records a payment against the session and writes the matching
// payment record. Re-recording before completion overwrites the previous one.
func PaySession(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	var input PaySessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sessionManager.RecordPayment(session, input.Amount, input.Method, input.TransactionID); err != nil {
		respondTransitionError(c, err)
		return
	}

	payment := models.CustomerPayment{
		ID:            uuid.New(),
		CenterID:      session.CenterID,
		SessionID:     session.ID,
		Amount:        input.Amount,
		Method:        input.Method,
		TransactionID: input.TransactionID,
		ReceiptNumber: "RCPT-" + utils.GenerateRandomString(8),
		PaymentDate:   time.Now(),
		ReceivedBy:    input.ReceivedBy,
	}

	if problems := pricing.ValidatePayment(&payment); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": problems})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(session).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	// One payment record per session: last write wins
	if err := purgeSessionPayment(tx, session.ID); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to replace payment record")
		return
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"payment": payment,
		"status":  lifecycle.Status(session),
	})
}

// SetSessionDiscount re-prices an unpaid session when the loyalty-discount
// flag changes. Once payment is recorded the price is immutable.
func SetSessionDiscount(c *gin.Context) {
	session, ok := loadSession(c)
	if !ok {
		return
	}

	var input DiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if session.IsPaid || session.IsTerminal() {
		utils.RespondWithError(c, http.StatusConflict, "Price is fixed once the session is paid or closed")
		return
	}

	basePrice, err := Catalog().BasePrice(session.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Service not found")
		return
	}
	multiplier, err := Catalog().VehicleMultiplier(session.VehicleTypeID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Vehicle type not found")
		return
	}

	result := pricing.Calculate(basePrice, multiplier)
	if input.Apply {
		var customer models.Customer
		if session.CustomerID == nil ||
			config.DB.First(&customer, "id = ?", *session.CustomerID).Error != nil ||
			!pricing.IsEligibleForDiscount(&customer) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer is not eligible for the loyalty discount")
			return
		}
		var center models.Center
		if err := config.DB.First(&center, "id = ?", session.CenterID).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		result.CustomerWashCount = customer.TotalCompletedBookings
		result = pricing.ApplyLoyaltyDiscount(result, center.LoyaltyDiscountPct)
	}

	session.Price = result.FinalPrice
	if err := config.DB.Save(session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "pricing": result})
}

// purgeSessionPayment removes any prior payment row for the session. The
// delete must be unscoped: a soft delete would leave the old row occupying
// the unique index on session_id and the replacement insert would collide.
func purgeSessionPayment(tx *gorm.DB, sessionID uuid.UUID) error {
	return tx.Unscoped().Where("session_id = ?", sessionID).Delete(&models.CustomerPayment{}).Error
}

// loadSession fetches the session scoped to the caller's center. On failure
// it writes the error response and returns ok=false.
func loadSession(c *gin.Context) (*models.WashSession, bool) {
	centerID, exists := c.Get("centerId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Center ID not found in context")
		return nil, false
	}

	centerUUID, err := uuid.Parse(centerID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid center ID format")
		return nil, false
	}

	sessionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session ID format")
		return nil, false
	}

	var session models.WashSession
	if err := config.DB.Where("center_id = ? AND id = ?", centerUUID, sessionUUID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &session, true
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, lifecycle.ErrPaymentInvalid):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
