package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience is a work history entry on a user profile.
type Experience struct {
	Base
	UserProfileID uuid.UUID   `gorm:"type:uuid;not null;index"`
	UserProfile   UserProfile `gorm:"foreignKey:UserProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CompanyName   string      `gorm:"size:100;not null"`
	Position      string      `gorm:"size:100;not null"`
	StartDate     time.Time   `gorm:"not null"`
	EndDate       *time.Time
	Description   string `gorm:"size:160"`
}
