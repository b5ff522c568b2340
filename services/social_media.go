package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aboutme/models"
	"aboutme/shared"
)

type SocialMediaGetDto struct {
	ID            uuid.UUID `json:"id"`
	UserProfileID uuid.UUID `json:"userProfileId"`
	Platform      string    `json:"platform"`
	Url           string    `json:"url"`
}

type SocialMediaCreateDto struct {
	UserProfileID uuid.UUID `json:"userProfileId"`
	Platform      string    `json:"platform"`
	Url           string    `json:"url"`
}

type SocialMediaUpdateDto struct {
	ID       uuid.UUID `json:"id"`
	Platform *string   `json:"platform"`
	Url      *string   `json:"url"`
}

func (d SocialMediaCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.Platform) == "" {
		e.add("Platform is required.")
	} else if len(d.Platform) > 100 {
		e.add("Platform cannot exceed 100 characters.")
	}
	if !isURL(d.Url) {
		e.add("Url is not valid.")
	}
	if d.UserProfileID == uuid.Nil {
		e.add("User Profile Id is required.")
	}
	return e.join()
}

// SocialMediaService manages external links on a profile. The business key
// is the platform plus the URL.
type SocialMediaService struct {
	crud[models.SocialMedia, SocialMediaGetDto]
}

func NewSocialMediaService(db *gorm.DB) *SocialMediaService {
	return &SocialMediaService{crud[models.SocialMedia, SocialMediaGetDto]{
		db:         db,
		name:       "Social media",
		plural:     "Social medias",
		searchCols: []string{"platform", "url"},
		toDto: func(m *models.SocialMedia) SocialMediaGetDto {
			return SocialMediaGetDto{ID: m.ID, UserProfileID: m.UserProfileID, Platform: m.Platform, Url: m.Url}
		},
	}}
}

func (s *SocialMediaService) Create(dto SocialMediaCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if !profileExists(s.db, dto.UserProfileID) {
		return shared.BadRequest("User profile does not exist.")
	}
	dup, err := s.exists("LOWER(platform) = ? AND LOWER(url) = ?", strings.ToLower(dto.Platform), strings.ToLower(dto.Url))
	if err != nil {
		return shared.Internal("failed to check for an existing social media")
	}
	if dup {
		return shared.BadRequest("This social media record already exists with the same platform and url.")
	}
	sm := models.SocialMedia{UserProfileID: dto.UserProfileID, Platform: dto.Platform, Url: dto.Url}
	if err := s.db.Create(&sm).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("This social media record already exists with the same platform and url.")
		}
		return shared.Internal("failed to create social media")
	}
	return shared.OK(dto, "Social media is successfully created.")
}

func (s *SocialMediaService) Update(id uuid.UUID, dto SocialMediaUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the social media ID.")
	}
	sm, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.Platform != nil {
		sm.Platform = *dto.Platform
	}
	if dto.Url != nil {
		sm.Url = *dto.Url
	}
	merged := SocialMediaCreateDto{UserProfileID: sm.UserProfileID, Platform: sm.Platform, Url: sm.Url}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if dto.Platform != nil || dto.Url != nil {
		dup, err := s.exists("LOWER(platform) = ? AND LOWER(url) = ? AND id <> ?",
			strings.ToLower(sm.Platform), strings.ToLower(sm.Url), id)
		if err != nil {
			return shared.Internal("failed to check for an existing social media")
		}
		if dup {
			return shared.BadRequest(fmt.Sprintf("A social media entry with the platform '%s' already exists for this user.", sm.Platform))
		}
	}
	sm.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(sm).Error; err != nil {
		return shared.Internal("failed to update social media")
	}
	return shared.OK(dto, "The social media is successfully updated.")
}
