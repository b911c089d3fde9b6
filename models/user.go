package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"serenityspa-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "admin"
	RoleTherapist = "therapist"
	RoleCustomer  = "customer"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	Role     string `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	PhotoURL string `json:"photoUrl"`

	// Therapist profile fields, empty for other roles
	Specialty string `json:"specialty,omitempty"`
	Bio       string `gorm:"type:text" json:"bio,omitempty"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

func (u *User) IsTherapist() bool {
	return u.Role == RoleTherapist
}

// Custom JSONB-backed string slice for list columns (benefits, inclusions)
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}
