package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is a credential earned by a user (owned by the User directly,
// not by the profile).
type Certificate struct {
	Base
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title          string    `gorm:"size:100;not null"`
	Issuer         string    `gorm:"size:100;not null"`
	IssueDate      time.Time `gorm:"not null"`
	ExpiryDate     *time.Time
	CertificateUrl string `gorm:"size:512;not null"`
}
