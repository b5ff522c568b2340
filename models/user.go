package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity record behind authentication. It is never
// hard-deleted and does not use the soft-delete Base; lifecycle changes are
// confirmation and refresh-token rotation only.
type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Email              string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash       []byte `gorm:"not null"`
	Name               string `gorm:"size:100;not null"`
	Surname            string `gorm:"size:100"`
	EmailConfirmed     bool   `gorm:"not null;default:false"`
	ConfirmToken       string `gorm:"size:64"`
	RefreshToken       string `gorm:"size:64;index"`
	RefreshTokenExpiry time.Time
	Roles              []Role `gorm:"many2many:user_roles;"`
	Profile            *UserProfile
	Certificates       []Certificate
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
