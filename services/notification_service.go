// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"washpro-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

// StartScheduler sends schedule reminders every morning at 8 AM
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule daily reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Notification scheduler started")
}

// SendDailyReminders texts every customer with a session scheduled today, for
// centers that opted into schedule reminders.
func (s *NotificationService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var centers []models.Center
	if err := s.db.Find(&centers, "schedule_reminders = ? AND sms_notifications = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch centers: %v", err)
		return
	}

	for _, center := range centers {
		s.ProcessCenterReminders(&center)
	}

	log.Println("Daily reminder processing completed")
}

func (s *NotificationService) ProcessCenterReminders(center *models.Center) {
	var sessions []models.WashSession
	err := s.db.Raw(`
		SELECT * FROM wash_sessions
		WHERE center_id = ?
		AND is_cancelled = false
		AND is_completed = false
		AND actual_start IS NULL
		AND scheduled_start::date = CURRENT_DATE
		AND deleted_at IS NULL
	`, center.ID).Scan(&sessions).Error
	if err != nil {
		log.Printf("Center %s: Failed to get today's sessions: %v", center.ID, err)
		return
	}

	for i := range sessions {
		session := &sessions[i]
		msg := fmt.Sprintf("Hi %s, reminder: your wash at %s is booked today at %s for vehicle %s.",
			session.CustomerName, center.Name,
			session.ScheduledStart.Format("15:04"), session.VehiclePlate)
		s.SendSMS(session.CustomerPhone, msg)
	}
}

// SendBookingConfirmation texts the customer right after a booking is made.
func (s *NotificationService) SendBookingConfirmation(center *models.Center, session *models.WashSession) {
	if !center.SMSNotifications {
		return
	}
	msg := fmt.Sprintf("Hi %s, your wash at %s is confirmed for %s. Total: %.2f.",
		session.CustomerName, center.Name,
		session.ScheduledStart.Format("Mon 2 Jan 15:04"), session.Price)
	s.SendSMS(session.CustomerPhone, msg)
}

func (s *NotificationService) SendSMS(to, body string) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
		return
	}
	log.Printf("SMS sent to %s", to)
}
