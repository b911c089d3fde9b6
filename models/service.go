package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServiceActive   = "Active"
	ServiceInactive = "Inactive"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Category string    `gorm:"default:'Massage'" json:"category"`
	Price    float64   `gorm:"type:decimal(10,2);not null" json:"price"`

	DurationLabel   string `json:"durationLabel"` // e.g. "60 min"
	CardDescription string `gorm:"type:text" json:"cardDescription"`
	FullDescription string `gorm:"type:text" json:"fullDescription"`

	Benefits StringList `gorm:"type:jsonb" json:"benefits"`
	Included StringList `gorm:"type:jsonb" json:"included"`

	Status   string `gorm:"type:varchar(20);default:'Active'" json:"status"`
	Featured bool   `gorm:"default:false" json:"featured"`
	ImageURL string `json:"imageUrl"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
