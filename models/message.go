package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageNew     = "New"
	MessageReplied = "Replied"
)

// MessageThread is a contact-form submission plus any admin replies.
type MessageThread struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Sender  string    `gorm:"not null" json:"sender"`
	Email   string    `gorm:"not null" json:"email"`
	Subject string    `json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`

	Status string `gorm:"type:varchar(20);default:'New'" json:"status"`
	Read   bool   `gorm:"default:false" json:"read"`

	Replies []MessageReply `gorm:"foreignKey:ThreadID" json:"replies"`

	gorm.Model
}

func (m *MessageThread) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

type MessageReply struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ThreadID uuid.UUID `gorm:"type:uuid;index;not null" json:"threadId"`
	Message  string    `gorm:"type:text;not null" json:"message"`

	gorm.Model
}

func (r *MessageReply) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
