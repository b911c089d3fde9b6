// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService sends day-before reminders for confirmed appointments over
// SMS/WhatsApp and mirrors them into the customer's inbox.
type ReminderService struct {
	db       *gorm.DB
	client   *twilio.RestClient
	notifier *Notifier
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		notifier: NewNotifier(db),
	}
}

// StartScheduler runs the reminder pass every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		utils.GetLogger().Error("Failed to schedule reminders", zap.Error(err))
		return
	}

	c.Start()
	utils.GetLogger().Info("Reminder scheduler started")
}

// SendDailyReminders reminds every customer with a confirmed appointment
// tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log := utils.GetLogger()
	log.Info("Starting daily reminder processing")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.AppointmentDateLayout)

	var appointments []models.Appointment
	err := s.db.Where("date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Find(&appointments).Error
	if err != nil {
		log.Error("Failed to fetch tomorrow's appointments", zap.Error(err))
		return
	}

	for i := range appointments {
		s.remind(&appointments[i])
	}

	log.Info("Daily reminder processing completed", zap.Int("count", len(appointments)))
}

func (s *ReminderService) remind(a *models.Appointment) {
	log := utils.GetLogger()

	message := fmt.Sprintf("Hi %s, a reminder of your %s at Serenity Spa tomorrow (%s) at %s. See you there!",
		a.CustomerName, a.ServiceName, a.Date, a.Time)

	if a.UserID != nil {
		s.notifier.Notify(*a.UserID, "Appointment reminder", message, models.NotificationAppointment)
	}

	if !utils.ValidatePhone(a.CustomerContact) {
		// Email-only contact, nothing to text.
		return
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := a.CustomerContact
	if strings.HasPrefix(a.CustomerContact, "+") {
		to = "whatsapp:" + a.CustomerContact
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Error("Failed to send reminder", zap.String("to", a.CustomerContact), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Info("Reminder sent", zap.String("to", a.CustomerContact), zap.String("sid", *resp.Sid))
	} else {
		log.Warn("Reminder sent but no SID returned", zap.String("to", a.CustomerContact))
	}

	reminderLog := models.ReminderLog{
		AppointmentID: a.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Error("Failed to log reminder", zap.String("appointmentId", a.ID.String()), zap.Error(err))
	}
}
