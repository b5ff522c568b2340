package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aboutme/models"
	"aboutme/shared"
)

type UserProfileGetDto struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	Bio             string     `json:"bio"`
	ProfileImageUrl string     `json:"profileImageUrl"`
	WebsiteUrl      string     `json:"websiteUrl"`
	PhoneNumber     string     `json:"phoneNumber"`
	Location        string     `json:"location"`
	TemplateID      *uuid.UUID `json:"templateId"`
}

type UserProfileCreateDto struct {
	UserID          uuid.UUID  `json:"userId"`
	Bio             string     `json:"bio"`
	ProfileImageUrl string     `json:"profileImageUrl"`
	WebsiteUrl      string     `json:"websiteUrl"`
	PhoneNumber     string     `json:"phoneNumber"`
	Location        string     `json:"location"`
	TemplateID      *uuid.UUID `json:"templateId"`
}

type UserProfileUpdateDto struct {
	ID              uuid.UUID  `json:"id"`
	Bio             *string    `json:"bio"`
	ProfileImageUrl *string    `json:"profileImageUrl"`
	WebsiteUrl      *string    `json:"websiteUrl"`
	PhoneNumber     *string    `json:"phoneNumber"`
	Location        *string    `json:"location"`
	TemplateID      *uuid.UUID `json:"templateId"`
}

func (d UserProfileCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.Bio) == "" {
		e.add("Biography is required.")
	} else if len(d.Bio) > 150 {
		e.add("Biography cannot exceed 150 characters.")
	}
	if !isURL(d.ProfileImageUrl) {
		e.add("Profile Image URL is not valid.")
	}
	if !isURL(d.WebsiteUrl) {
		e.add("Website URL is not valid.")
	}
	if strings.TrimSpace(d.PhoneNumber) == "" {
		e.add("Phone Number is required.")
	} else if len(d.PhoneNumber) > 24 {
		e.add("Phone Number cannot exceed 24 characters.")
	} else if !isDigits(d.PhoneNumber) {
		e.add("Phone Number must contain only digits.")
	}
	if strings.TrimSpace(d.Location) == "" {
		e.add("Location is required.")
	} else if len(d.Location) > 150 {
		e.add("Location cannot exceed 150 characters.")
	}
	if d.UserID == uuid.Nil {
		e.add("User Id is required.")
	}
	if d.TemplateID == nil || *d.TemplateID == uuid.Nil {
		e.add("Template Id is required.")
	}
	return e.join()
}

// UserProfileService manages the portfolio page itself. At most one active
// profile may exist per user; search matches the owner's name and surname.
type UserProfileService struct {
	crud[models.UserProfile, UserProfileGetDto]
}

func NewUserProfileService(db *gorm.DB) *UserProfileService {
	return &UserProfileService{crud[models.UserProfile, UserProfileGetDto]{
		db:         db,
		name:       "User profile",
		plural:     "User profiles",
		searchCols: []string{"users.name", "users.surname"},
		joins:      []string{"JOIN users ON users.id = user_profiles.user_id"},
		selects:    "user_profiles.*",
		toDto: func(p *models.UserProfile) UserProfileGetDto {
			return UserProfileGetDto{
				ID:              p.ID,
				UserID:          p.UserID,
				Bio:             p.Bio,
				ProfileImageUrl: p.ProfileImageUrl,
				WebsiteUrl:      p.WebsiteUrl,
				PhoneNumber:     p.PhoneNumber,
				Location:        p.Location,
				TemplateID:      p.TemplateID,
			}
		},
	}}
}

func (s *UserProfileService) Create(dto UserProfileCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if !userExists(s.db, dto.UserID) {
		return shared.BadRequest("User does not exist.")
	}
	if dto.TemplateID != nil && !templateExists(s.db, *dto.TemplateID) {
		return shared.BadRequest("Template does not exist.")
	}
	dup, err := s.exists("user_id = ?", dto.UserID)
	if err != nil {
		return shared.Internal("failed to check for an existing user profile")
	}
	if dup {
		return shared.BadRequest("A profile for this user already exists.")
	}
	profile := models.UserProfile{
		UserID:          dto.UserID,
		Bio:             dto.Bio,
		ProfileImageUrl: dto.ProfileImageUrl,
		WebsiteUrl:      dto.WebsiteUrl,
		PhoneNumber:     dto.PhoneNumber,
		Location:        dto.Location,
		TemplateID:      dto.TemplateID,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("A profile for this user already exists.")
		}
		return shared.Internal("failed to create user profile")
	}
	return shared.OK(dto, "User profile successfully created.")
}

func (s *UserProfileService) Update(id uuid.UUID, dto UserProfileUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the user profile ID.")
	}
	profile, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.Bio != nil {
		profile.Bio = *dto.Bio
	}
	if dto.ProfileImageUrl != nil {
		profile.ProfileImageUrl = *dto.ProfileImageUrl
	}
	if dto.WebsiteUrl != nil {
		profile.WebsiteUrl = *dto.WebsiteUrl
	}
	if dto.PhoneNumber != nil {
		profile.PhoneNumber = *dto.PhoneNumber
	}
	if dto.Location != nil {
		profile.Location = *dto.Location
	}
	if dto.TemplateID != nil {
		if !templateExists(s.db, *dto.TemplateID) {
			return shared.BadRequest("Template does not exist.")
		}
		profile.TemplateID = dto.TemplateID
	}
	merged := UserProfileCreateDto{
		UserID:          profile.UserID,
		Bio:             profile.Bio,
		ProfileImageUrl: profile.ProfileImageUrl,
		WebsiteUrl:      profile.WebsiteUrl,
		PhoneNumber:     profile.PhoneNumber,
		Location:        profile.Location,
		TemplateID:      profile.TemplateID,
	}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	profile.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(profile).Error; err != nil {
		return shared.Internal("failed to update user profile")
	}
	return shared.OK(dto, "The user profile is successfully updated.")
}

// SetProfileImage stores the public URL of a freshly uploaded profile image.
func (s *UserProfileService) SetProfileImage(id uuid.UUID, publicURL string) *shared.Response {
	profile, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	profile.ProfileImageUrl = publicURL
	profile.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(profile).Error; err != nil {
		return shared.Internal("failed to update user profile")
	}
	return shared.OK(UserProfileGetDto{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Bio:             profile.Bio,
		ProfileImageUrl: profile.ProfileImageUrl,
		WebsiteUrl:      profile.WebsiteUrl,
		PhoneNumber:     profile.PhoneNumber,
		Location:        profile.Location,
		TemplateID:      profile.TemplateID,
	}, "Profile image updated successfully.")
}
