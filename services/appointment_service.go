// services/appointment_service.go
package services

import (
	"errors"
	"fmt"

	"serenityspa-backend/models"
	"serenityspa-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrTherapistRequired   = errors.New("a therapist must be assigned before confirming")
	ErrTherapistNotFound   = errors.New("assigned therapist not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotCancellable      = errors.New("only pending appointments can be cancelled")
	ErrInvalidSchedule     = errors.New("invalid appointment date or time")
)

type BookingInput struct {
	CustomerName    string
	CustomerContact string
	ServiceName     string
	Date            string
	Time            string
	Notes           string
	UserID          *uuid.UUID
}

// TransitionOptions carries the admin's inputs for a status change.
// Override permits leaving a terminal state.
type TransitionOptions struct {
	TherapistID *uuid.UUID
	Note        string
	Reason      string
	Override    bool
}

type AppointmentService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db, notifier: NewNotifier(db)}
}

// Book validates the schedule and creates a Pending appointment.
func (s *AppointmentService) Book(input BookingInput) (*models.Appointment, error) {
	date, err := utils.ParseAppointmentDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSchedule)
	}
	if utils.IsPastDate(date) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidSchedule)
	}
	if _, err := utils.ParseAppointmentTime(input.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidSchedule)
	}

	appointment := models.Appointment{
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		ServiceName:     input.ServiceName,
		Date:            input.Date,
		Time:            input.Time,
		Notes:           input.Notes,
		Status:          models.StatusPending,
		UserID:          input.UserID,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Transition is the single mutator for appointment status. It enforces the
// transition table, requires a therapist before confirmation, and emits the
// inbox notifications for the affected customer and therapist.
func (s *AppointmentService) Transition(id uuid.UUID, to models.AppointmentStatus, opts TransitionOptions) (*models.Appointment, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}

	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	from := appointment.Status
	if from == to && opts.TherapistID == nil {
		return &appointment, nil
	}
	if from != to && !models.CanTransition(from, to) && !opts.Override {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	var previousTherapist *uuid.UUID
	if appointment.TherapistID != nil {
		prev := *appointment.TherapistID
		previousTherapist = &prev
	}

	var therapist *models.User
	if opts.TherapistID != nil {
		var u models.User
		err := s.db.First(&u, "id = ? AND role = ?", *opts.TherapistID, models.RoleTherapist).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTherapistNotFound
			}
			return nil, err
		}
		therapist = &u
		appointment.TherapistID = opts.TherapistID
		appointment.TherapistName = u.Name
	}

	// Hard precondition: no confirmation without an assigned therapist.
	if to == models.StatusConfirmed && appointment.TherapistID == nil {
		return nil, ErrTherapistRequired
	}

	appointment.Status = to
	if err := s.db.Save(&appointment).Error; err != nil {
		return nil, err
	}

	s.notifyCustomer(&appointment, to, opts)

	assignmentChanged := opts.TherapistID != nil &&
		(previousTherapist == nil || *previousTherapist != *opts.TherapistID)
	if to == models.StatusConfirmed && assignmentChanged && therapist != nil {
		s.notifier.Notify(therapist.ID,
			"New appointment assignment",
			fmt.Sprintf("You have been assigned a %s appointment for %s on %s at %s.",
				appointment.ServiceName, appointment.CustomerName, appointment.Date, appointment.Time),
			models.NotificationAppointment,
		)
	}

	return &appointment, nil
}

func (s *AppointmentService) notifyCustomer(a *models.Appointment, to models.AppointmentStatus, opts TransitionOptions) {
	if a.UserID == nil {
		return
	}

	var title, message string
	switch to {
	case models.StatusConfirmed:
		title = "Appointment confirmed"
		message = fmt.Sprintf("Your %s appointment on %s at %s has been confirmed with %s.",
			a.ServiceName, a.Date, a.Time, a.TherapistName)
	case models.StatusCancelled:
		title = "Appointment cancelled"
		message = fmt.Sprintf("Your %s appointment on %s at %s has been cancelled.",
			a.ServiceName, a.Date, a.Time)
		if opts.Reason != "" {
			message += " Reason: " + opts.Reason
		}
	case models.StatusCompleted:
		title = "Thank you for visiting"
		message = fmt.Sprintf("We hope you enjoyed your %s. See you again soon!", a.ServiceName)
	default:
		title = "Appointment updated"
		message = fmt.Sprintf("Your %s appointment on %s at %s is now %s.",
			a.ServiceName, a.Date, a.Time, to)
	}
	if opts.Note != "" {
		message += " Note: " + opts.Note
	}

	s.notifier.Notify(*a.UserID, title, message, models.NotificationAppointment)
}

// CancelOwn lets a customer cancel their own appointment while it is still
// Pending.
func (s *AppointmentService) CancelOwn(id, userID uuid.UUID, reason string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.First(&appointment, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appointment.Status != models.StatusPending {
		return nil, ErrNotCancellable
	}
	return s.Transition(appointment.ID, models.StatusCancelled, TransitionOptions{Reason: reason})
}
