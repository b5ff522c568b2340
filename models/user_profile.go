package models

import "github.com/google/uuid"

// UserProfile is the public portfolio page of a user (one active profile per
// user). It optionally references a presentation Template.
type UserProfile struct {
	Base
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	User            User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Bio             string     `gorm:"size:150"`
	ProfileImageUrl string     `gorm:"size:512"`
	WebsiteUrl      string     `gorm:"size:512"`
	PhoneNumber     string     `gorm:"size:24"`
	Location        string     `gorm:"size:150"`
	TemplateID      *uuid.UUID `gorm:"type:uuid;index"`
	Template        *Template  `gorm:"foreignKey:TemplateID"`
}
