package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Excerpt  string    `gorm:"type:text" json:"excerpt"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	Category string    `gorm:"default:'Wellness'" json:"category"`
	ImageURL string    `json:"imageUrl"`

	AuthorID   *uuid.UUID `gorm:"type:uuid;index" json:"authorId,omitempty"`
	AuthorName string     `json:"authorName"`
	Published  bool       `gorm:"default:true" json:"published"`

	gorm.Model
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
