package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	u := models.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "password123",
		Name:     "Test " + role,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create %s: %v", role, err)
	}
	return &u
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(utils.AppointmentDateLayout)
}

func bookPending(t *testing.T, svc *AppointmentService, userID *uuid.UUID) *models.Appointment {
	t.Helper()
	appointment, err := svc.Book(BookingInput{
		CustomerName:    "Ada Lovelace",
		CustomerContact: "+15550107788",
		ServiceName:     "Deep Tissue Massage",
		Date:            futureDate(),
		Time:            "14:30",
		UserID:          userID,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	return appointment
}

func countNotifications(t *testing.T, db *gorm.DB, userID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return n
}

func TestBook_ValidatesSchedule(t *testing.T) {
	svc := NewAppointmentService(setupTestDB(t))

	cases := []struct{ date, clock string }{
		{"2026-13-40", "14:30"}, // impossible date
		{"tomorrow", "14:30"},   // wrong format
		{"2020-01-01", "14:30"}, // in the past
		{futureDate(), "2pm"},   // wrong time format
		{futureDate(), "25:99"}, // impossible time
	}
	for _, tc := range cases {
		_, err := svc.Book(BookingInput{
			CustomerName:    "Ada",
			CustomerContact: "+15550107788",
			ServiceName:     "Swedish Massage",
			Date:            tc.date,
			Time:            tc.clock,
		})
		if !errors.Is(err, ErrInvalidSchedule) {
			t.Errorf("Book(%q, %q) err = %v, want ErrInvalidSchedule", tc.date, tc.clock, err)
		}
	}
}

func TestBook_CreatesPending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)

	appointment := bookPending(t, svc, nil)
	if appointment.Status != models.StatusPending {
		t.Fatalf("status = %s, want Pending", appointment.Status)
	}
}

func TestTransition_ConfirmWithoutTherapistRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	customer := createUser(t, db, models.RoleCustomer)
	appointment := bookPending(t, svc, &customer.ID)

	_, err := svc.Transition(appointment.ID, models.StatusConfirmed, TransitionOptions{})
	if !errors.Is(err, ErrTherapistRequired) {
		t.Fatalf("err = %v, want ErrTherapistRequired", err)
	}

	// No mutation, no notification
	var reloaded models.Appointment
	if err := db.First(&reloaded, "id = ?", appointment.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusPending {
		t.Fatalf("status mutated to %s", reloaded.Status)
	}
	if n := countNotifications(t, db, customer.ID); n != 0 {
		t.Fatalf("got %d notifications, want 0", n)
	}
}

func TestTransition_ConfirmNotifiesCustomerAndTherapist(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	customer := createUser(t, db, models.RoleCustomer)
	therapist := createUser(t, db, models.RoleTherapist)
	appointment := bookPending(t, svc, &customer.ID)

	updated, err := svc.Transition(appointment.ID, models.StatusConfirmed, TransitionOptions{
		TherapistID: &therapist.ID,
	})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("status = %s, want Confirmed", updated.Status)
	}
	if updated.TherapistName != therapist.Name {
		t.Fatalf("therapist name = %q, want %q", updated.TherapistName, therapist.Name)
	}

	if n := countNotifications(t, db, customer.ID); n != 1 {
		t.Fatalf("customer notifications = %d, want 1", n)
	}
	if n := countNotifications(t, db, therapist.ID); n != 1 {
		t.Fatalf("therapist notifications = %d, want 1", n)
	}
}

func TestTransition_ConfirmWithUnknownTherapist(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	appointment := bookPending(t, svc, nil)

	bogus := uuid.New()
	_, err := svc.Transition(appointment.ID, models.StatusConfirmed, TransitionOptions{TherapistID: &bogus})
	if !errors.Is(err, ErrTherapistNotFound) {
		t.Fatalf("err = %v, want ErrTherapistNotFound", err)
	}
}

func TestTransition_CancelProducesOneUnreadNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	customer := createUser(t, db, models.RoleCustomer)
	appointment := bookPending(t, svc, &customer.ID)

	if _, err := svc.Transition(appointment.ID, models.StatusCancelled, TransitionOptions{Reason: "therapist unavailable"}); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	var notifications []models.Notification
	if err := db.Where("user_id = ?", customer.ID).Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want exactly 1", len(notifications))
	}
	if notifications[0].Read {
		t.Fatal("cancellation notification must start unread")
	}
	if want := "therapist unavailable"; !strings.Contains(notifications[0].Message, want) {
		t.Fatalf("message %q does not carry the reason %q", notifications[0].Message, want)
	}
}

func TestTransition_TerminalNeedsOverride(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	appointment := bookPending(t, svc, nil)

	if _, err := svc.Transition(appointment.ID, models.StatusCancelled, TransitionOptions{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := svc.Transition(appointment.ID, models.StatusPending, TransitionOptions{})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	if _, err := svc.Transition(appointment.ID, models.StatusPending, TransitionOptions{Override: true}); err != nil {
		t.Fatalf("override: %v", err)
	}
}

func TestTransition_UnknownStatusAndMissingRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)

	if _, err := svc.Transition(uuid.New(), "Archived", TransitionOptions{}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.Transition(uuid.New(), models.StatusCancelled, TransitionOptions{Override: true}); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("err = %v, want ErrAppointmentNotFound", err)
	}
}

func TestCancelOwn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAppointmentService(db)
	customer := createUser(t, db, models.RoleCustomer)
	other := createUser(t, db, models.RoleCustomer)
	appointment := bookPending(t, svc, &customer.ID)

	// Someone else's appointment is invisible
	if _, err := svc.CancelOwn(appointment.ID, other.ID, ""); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("err = %v, want ErrAppointmentNotFound", err)
	}

	updated, err := svc.CancelOwn(appointment.ID, customer.ID, "changed my mind")
	if err != nil {
		t.Fatalf("CancelOwn: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("status = %s, want Cancelled", updated.Status)
	}

	// Terminal now, a second cancel is rejected
	if _, err := svc.CancelOwn(appointment.ID, customer.ID, ""); !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("err = %v, want ErrNotCancellable", err)
	}
}
