package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	UserName    string     `gorm:"not null" json:"userName"`
	ServiceName string     `json:"serviceName"`
	Rating      int        `gorm:"not null" json:"rating"` // 1..5
	Comment     string     `gorm:"type:text;not null" json:"comment"`
	Approved    bool       `gorm:"default:false" json:"approved"`

	gorm.Model
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
