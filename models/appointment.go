package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// allowedTransitions is the customer-visible lifecycle. Admins may leave a
// terminal state only with an explicit override.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s AppointmentStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether from -> to is allowed without an override.
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName    string    `gorm:"not null" json:"customerName"`
	CustomerContact string    `gorm:"not null" json:"customerContact"`
	ServiceName     string    `gorm:"not null" json:"serviceName"`

	TherapistID   *uuid.UUID `gorm:"type:uuid;index" json:"therapistId,omitempty"`
	TherapistName string     `json:"therapistName,omitempty"`

	Date  string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Time  string `gorm:"type:varchar(5);not null" json:"time"`  // HH:MM
	Notes string `gorm:"type:text" json:"notes"`

	Status AppointmentStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`

	// Set when the booking was made from a signed-in account
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
