package lifecycle

import (
	"time"
	"washpro-backend/models"
	"washpro-backend/pricing"

	"github.com/google/uuid"
)

// Display statuses, in priority order: a cancelled session always reports
// cancelled no matter what other flags are set.
const (
	StatusCancelled  = "cancelled"
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusPaid       = "paid"   // paid but not yet started/completed
	StatusUnpaid     = "unpaid" // scheduled, nothing else recorded
)

// Manager drives a wash session through its state machine. The clock is
// injectable so transitions are testable at fixed instants.
type Manager struct {
	now func() time.Time
}

func NewManager() *Manager {
	return &Manager{now: time.Now}
}

func NewManagerWithClock(now func() time.Time) *Manager {
	return &Manager{now: now}
}

// Start moves a scheduled session to in-progress.
func (m *Manager) Start(s *models.WashSession) error {
	if !s.IsScheduled() {
		return &TransitionError{Op: "start", State: Status(s)}
	}
	now := m.now()
	s.ActualStart = &now
	s.UpdatedAt = now
	return nil
}

// Complete finishes an in-progress session and stores the wash duration plus
// optional rating and feedback. The caller must follow up with the customer
// loyalty-counter update; this package only flips the session.
func (m *Manager) Complete(s *models.WashSession, durationMinutes int, rating int, feedback string) error {
	if !s.IsInProgress() {
		return &TransitionError{Op: "complete", State: Status(s)}
	}
	now := m.now()
	s.ActualEnd = &now
	s.IsCompleted = true
	if durationMinutes > 0 {
		s.DurationMinutes = durationMinutes
	} else {
		s.DurationMinutes = int(now.Sub(*s.ActualStart).Minutes())
	}
	s.Rating = rating
	s.Feedback = feedback
	s.UpdatedAt = now
	return nil
}

// Cancel aborts a session that has not yet finished. Cancelling twice fails;
// the first reason is retained.
func (m *Manager) Cancel(s *models.WashSession, reason string) error {
	if s.IsTerminal() {
		return &TransitionError{Op: "cancel", State: Status(s)}
	}
	now := m.now()
	// Diagnostic only: minutes lost when a future slot is given up unstarted.
	if s.ActualStart == nil && s.ScheduledStart.After(now) {
		s.DurationMinutes = -int(s.ScheduledStart.Sub(now).Minutes())
	}
	s.IsCancelled = true
	s.CancellationReason = reason
	s.UpdatedAt = now
	return nil
}

// RecordPayment stores payment details on the session. Recording again before
// completion overwrites the previous payment (last write wins). The payment
// rules are enforced here rather than left to a pre-submit check: the amount
// must be positive and electronic methods need a transaction reference.
func (m *Manager) RecordPayment(s *models.WashSession, amount float64, method, transactionID string) error {
	if s.IsCancelled {
		return &TransitionError{Op: "pay", State: Status(s)}
	}
	if s.IsCompleted && s.IsPaid {
		return &TransitionError{Op: "pay", State: Status(s)}
	}
	if amount <= 0 {
		return ErrPaymentInvalid
	}
	if pricing.IsElectronicPayment(method) && transactionID == "" {
		return ErrPaymentInvalid
	}
	s.AmountPaid = amount
	s.PaymentMethod = method
	s.TransactionID = transactionID
	s.IsPaid = true
	s.UpdatedAt = m.now()
	return nil
}

// Status derives the display status of a session.
func Status(s *models.WashSession) string {
	switch {
	case s.IsCancelled:
		return StatusCancelled
	case s.IsCompleted:
		return StatusCompleted
	case s.IsInProgress():
		return StatusInProgress
	case s.IsPaid:
		return StatusPaid
	default:
		return StatusUnpaid
	}
}

// Validate collects every violated required-field or positivity constraint.
// It never fails a transition; it is a pre-submit gate for booking forms.
func Validate(s *models.WashSession) ValidationErrors {
	var errs ValidationErrors
	if s.CenterID == uuid.Nil {
		errs.Add("centerId", "center is required")
	}
	if s.ServiceID == uuid.Nil {
		errs.Add("serviceId", "service is required")
	}
	if s.VehicleTypeID == uuid.Nil {
		errs.Add("vehicleTypeId", "vehicle type is required")
	}
	if s.VehiclePlate == "" {
		errs.Add("vehiclePlate", "vehicle plate is required")
	}
	if s.CustomerPhone == "" {
		errs.Add("customerPhone", "customer phone is required")
	}
	if s.Price <= 0 {
		errs.Add("price", "price must be greater than zero")
	}
	if s.AmountPaid < 0 {
		errs.Add("amountPaid", "amount paid cannot be negative")
	}
	return errs
}
