package models

import "github.com/google/uuid"

// SocialMedia is an external link (LinkedIn, GitHub, ...) on a user profile.
type SocialMedia struct {
	Base
	UserProfileID uuid.UUID   `gorm:"type:uuid;not null;index"`
	UserProfile   UserProfile `gorm:"foreignKey:UserProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Platform      string      `gorm:"size:100;not null"`
	Url           string      `gorm:"size:512;not null"`
}

func (SocialMedia) TableName() string { return "social_medias" }
