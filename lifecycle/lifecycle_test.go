package lifecycle

import (
	"testing"
	"time"
	"washpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func testManager() *Manager {
	return NewManagerWithClock(func() time.Time { return testNow })
}

func scheduledSession() *models.WashSession {
	return &models.WashSession{
		ID:             uuid.New(),
		CenterID:       uuid.New(),
		ServiceID:      uuid.New(),
		VehicleTypeID:  uuid.New(),
		CustomerPhone:  "+254712345678",
		VehiclePlate:   "KBZ123A",
		Price:          150,
		ScheduledStart: testNow.Add(-time.Hour),
	}
}

func TestStartFromScheduled(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.Start(s))
	require.NotNil(t, s.ActualStart)
	assert.Equal(t, testNow, *s.ActualStart)
	assert.True(t, s.IsInProgress())
}

func TestStartRejectedOutsideScheduled(t *testing.T) {
	m := testManager()

	started := scheduledSession()
	require.NoError(t, m.Start(started))

	cancelled := scheduledSession()
	require.NoError(t, m.Cancel(cancelled, "no show"))

	completed := scheduledSession()
	require.NoError(t, m.Start(completed))
	require.NoError(t, m.Complete(completed, 30, 0, ""))

	for name, s := range map[string]*models.WashSession{
		"already started":   started,
		"already cancelled": cancelled,
		"already completed": completed,
	} {
		err := m.Start(s)
		assert.ErrorIs(t, err, ErrInvalidTransition, name)
	}
}

func TestCompleteFromInProgress(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.Start(s))
	require.NoError(t, m.Complete(s, 45, 5, "spotless"))

	assert.True(t, s.IsCompleted)
	assert.False(t, s.IsInProgress())
	require.NotNil(t, s.ActualEnd)
	assert.Equal(t, 45, s.DurationMinutes)
	assert.Equal(t, 5, s.Rating)
	assert.Equal(t, "spotless", s.Feedback)
}

func TestCompleteDerivesDurationWhenUnset(t *testing.T) {
	start := testNow
	clock := start
	m := NewManagerWithClock(func() time.Time { return clock })
	s := scheduledSession()

	require.NoError(t, m.Start(s))
	clock = start.Add(25 * time.Minute)
	require.NoError(t, m.Complete(s, 0, 0, ""))

	assert.Equal(t, 25, s.DurationMinutes)
	assert.Equal(t, 25*time.Minute, s.ActualEnd.Sub(*s.ActualStart))
}

func TestCompleteRejectedWhenNotStarted(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	err := m.Complete(s, 30, 0, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, s.IsCompleted)
	assert.Nil(t, s.ActualEnd)
}

func TestCancelFromScheduledAndInProgress(t *testing.T) {
	m := testManager()

	scheduled := scheduledSession()
	require.NoError(t, m.Cancel(scheduled, "customer request"))
	assert.True(t, scheduled.IsCancelled)
	assert.Equal(t, "customer request", scheduled.CancellationReason)

	inProgress := scheduledSession()
	require.NoError(t, m.Start(inProgress))
	require.NoError(t, m.Cancel(inProgress, "machine failure"))
	assert.True(t, inProgress.IsCancelled)
}

func TestCancelTwiceRetainsFirstReason(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.Cancel(s, "first"))
	err := m.Cancel(s, "second")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "first", s.CancellationReason)
	assert.True(t, s.IsCancelled)
}

func TestCancelRecordsLostMinutesBeforeFutureStart(t *testing.T) {
	m := testManager()
	s := scheduledSession()
	s.ScheduledStart = testNow.Add(90 * time.Minute)

	require.NoError(t, m.Cancel(s, "no show"))
	assert.Equal(t, -90, s.DurationMinutes)
}

func TestCancelAfterCompleteRejected(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.Start(s))
	require.NoError(t, m.Complete(s, 30, 0, ""))

	err := m.Cancel(s, "too late")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, s.IsCancelled)
}

func TestRecordPayment(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.RecordPayment(s, 150, models.PaymentMethodCash, ""))
	assert.True(t, s.IsPaid)
	assert.Equal(t, 150.0, s.AmountPaid)
	assert.Equal(t, models.PaymentMethodCash, s.PaymentMethod)
}

func TestRecordPaymentOverwritesBeforeCompletion(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.RecordPayment(s, 100, models.PaymentMethodCash, ""))
	require.NoError(t, m.RecordPayment(s, 150, models.PaymentMethodCard, "TX-42"))

	assert.Equal(t, 150.0, s.AmountPaid)
	assert.Equal(t, models.PaymentMethodCard, s.PaymentMethod)
	assert.Equal(t, "TX-42", s.TransactionID)
}

func TestRecordPaymentValidity(t *testing.T) {
	m := testManager()

	tests := []struct {
		name          string
		amount        float64
		method        string
		transactionID string
		wantErr       error
	}{
		{"cash needs no reference", 150, models.PaymentMethodCash, "", nil},
		{"mobile money without reference", 150, models.PaymentMethodMobileMoney, "", ErrPaymentInvalid},
		{"mobile money with reference", 150, models.PaymentMethodMobileMoney, "MM-1", nil},
		{"zero amount", 0, models.PaymentMethodCash, "", ErrPaymentInvalid},
		{"negative amount", -10, models.PaymentMethodCash, "", ErrPaymentInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scheduledSession()
			err := m.RecordPayment(s, tt.amount, tt.method, tt.transactionID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, s.IsPaid)
			} else {
				assert.NoError(t, err)
				assert.True(t, s.IsPaid)
			}
		})
	}
}

func TestRecordPaymentRejectedOnCancelledSession(t *testing.T) {
	m := testManager()
	s := scheduledSession()
	require.NoError(t, m.Cancel(s, "no show"))

	err := m.RecordPayment(s, 150, models.PaymentMethodCash, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRecordPaymentRejectedOnceCompletedAndPaid(t *testing.T) {
	m := testManager()
	s := scheduledSession()

	require.NoError(t, m.RecordPayment(s, 150, models.PaymentMethodCash, ""))
	require.NoError(t, m.Start(s))
	require.NoError(t, m.Complete(s, 30, 0, ""))

	err := m.RecordPayment(s, 200, models.PaymentMethodCash, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 150.0, s.AmountPaid)
}

func TestStatusPriority(t *testing.T) {
	m := testManager()

	// Cancellation dominates every other flag, even paid
	paidThenCancelled := scheduledSession()
	require.NoError(t, m.RecordPayment(paidThenCancelled, 150, models.PaymentMethodCash, ""))
	require.NoError(t, m.Cancel(paidThenCancelled, "changed mind"))

	completed := scheduledSession()
	require.NoError(t, m.Start(completed))
	require.NoError(t, m.Complete(completed, 30, 0, ""))

	inProgress := scheduledSession()
	require.NoError(t, m.Start(inProgress))

	paid := scheduledSession()
	require.NoError(t, m.RecordPayment(paid, 150, models.PaymentMethodCash, ""))

	tests := []struct {
		name string
		s    *models.WashSession
		want string
	}{
		{"cancelled wins over paid", paidThenCancelled, StatusCancelled},
		{"completed", completed, StatusCompleted},
		{"in progress", inProgress, StatusInProgress},
		{"paid pending", paid, StatusPaid},
		{"fresh booking", scheduledSession(), StatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.s))
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	s := &models.WashSession{AmountPaid: -5}

	errs := Validate(s)
	require.True(t, errs.HasErrors())

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"centerId", "serviceId", "vehicleTypeId", "vehiclePlate", "customerPhone", "price", "amountPaid"} {
		assert.True(t, fields[f], "expected violation for %s", f)
	}
}

func TestValidateCleanSession(t *testing.T) {
	assert.False(t, Validate(scheduledSession()).HasErrors())
}
