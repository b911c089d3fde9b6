package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationAppointment = "appointment"
	NotificationMessage     = "message"
	NotificationSystem      = "system"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Title   string    `gorm:"not null" json:"title"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Type    string    `gorm:"type:varchar(20);default:'system'" json:"type"`
	Read    bool      `gorm:"default:false" json:"read"`

	gorm.Model
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
