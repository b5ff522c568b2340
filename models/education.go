package models

import (
	"time"

	"github.com/google/uuid"
)

// Education is a schooling entry on a user profile.
type Education struct {
	Base
	UserProfileID uuid.UUID   `gorm:"type:uuid;not null;index"`
	UserProfile   UserProfile `gorm:"foreignKey:UserProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SchoolName    string      `gorm:"size:100;not null"`
	Degree        string      `gorm:"size:100;not null"`
	FieldOfStudy  string      `gorm:"size:100;not null"`
	StartDate     time.Time   `gorm:"not null"`
	EndDate       *time.Time
}
