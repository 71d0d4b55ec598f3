package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"washpro-backend/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

// Replacing a session's payment must issue a hard DELETE. A soft delete
// leaves the old row in the unique index on session_id and the replacement
// insert fails with a unique-constraint error.
func TestPurgeSessionPaymentHardDeletes(t *testing.T) {
	db, mock := newMockDB(t)
	sessionID := uuid.New()

	mock.ExpectExec(`DELETE FROM "customer_payments" WHERE session_id = \$1`).
		WithArgs(sessionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, purgeSessionPayment(db, sessionID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSessionsPaidFilterExcludesInProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	config.DB = db

	// A paid session with actual_start set displays as in_progress, so the
	// paid listing must filter it out.
	mock.ExpectQuery(`is_paid = true AND is_cancelled = false AND is_completed = false AND actual_start IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/sessions?status=paid", nil)
	c.Set("centerId", uuid.New().String())

	GetSessions(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSessionsUnpaidFilterExcludesInProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	config.DB = db

	mock.ExpectQuery(`is_paid = false AND is_cancelled = false AND is_completed = false AND actual_start IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/sessions?status=unpaid", nil)
	c.Set("centerId", uuid.New().String())

	GetSessions(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
