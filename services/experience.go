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

type ExperienceGetDto struct {
	ID            uuid.UUID  `json:"id"`
	UserProfileID uuid.UUID  `json:"userProfileId"`
	CompanyName   string     `json:"companyName"`
	Position      string     `json:"position"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Description   string     `json:"description"`
}

type ExperienceCreateDto struct {
	UserProfileID uuid.UUID  `json:"userProfileId"`
	CompanyName   string     `json:"companyName"`
	Position      string     `json:"position"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Description   string     `json:"description"`
}

type ExperienceUpdateDto struct {
	ID          uuid.UUID  `json:"id"`
	CompanyName *string    `json:"companyName"`
	Position    *string    `json:"position"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description *string    `json:"description"`
}

func (d ExperienceCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.CompanyName) == "" {
		e.add("Company name is required.")
	} else if len(d.CompanyName) > 100 {
		e.add("Company name cannot exceed 100 characters.")
	}
	if strings.TrimSpace(d.Position) == "" {
		e.add("Position is required.")
	} else if len(d.Position) > 100 {
		e.add("Position cannot exceed 100 characters.")
	}
	if d.StartDate.IsZero() {
		e.add("Start date is required.")
	} else if d.StartDate.After(time.Now()) {
		e.add("Start date cannot be in the future.")
	}
	if len(d.Description) > 160 {
		e.add("Description cannot exceed 160 characters.")
	}
	if d.EndDate != nil && !d.EndDate.After(d.StartDate) {
		e.add("End date must be after the start date.")
	}
	if d.UserProfileID == uuid.Nil {
		e.add("User Profile Id is required.")
	}
	return e.join()
}

// ExperienceService manages work history entries. The business key is the
// combination of company, position and start date.
type ExperienceService struct {
	crud[models.Experience, ExperienceGetDto]
}

func NewExperienceService(db *gorm.DB) *ExperienceService {
	return &ExperienceService{crud[models.Experience, ExperienceGetDto]{
		db:         db,
		name:       "Experience",
		plural:     "Experiences",
		searchCols: []string{"company_name", "position"},
		toDto: func(e *models.Experience) ExperienceGetDto {
			return ExperienceGetDto{
				ID:            e.ID,
				UserProfileID: e.UserProfileID,
				CompanyName:   e.CompanyName,
				Position:      e.Position,
				StartDate:     e.StartDate,
				EndDate:       e.EndDate,
				Description:   e.Description,
			}
		},
	}}
}

func (s *ExperienceService) Create(dto ExperienceCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if !profileExists(s.db, dto.UserProfileID) {
		return shared.BadRequest("User profile does not exist.")
	}
	dup, err := s.exists(
		"LOWER(company_name) = ? AND LOWER(position) = ? AND start_date = ?",
		strings.ToLower(dto.CompanyName), strings.ToLower(dto.Position), dto.StartDate,
	)
	if err != nil {
		return shared.Internal("failed to check for an existing experience")
	}
	if dup {
		return shared.BadRequest("This experience record already exists with the same company and position for this start date.")
	}
	exp := models.Experience{
		UserProfileID: dto.UserProfileID,
		CompanyName:   dto.CompanyName,
		Position:      dto.Position,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		Description:   dto.Description,
	}
	if err := s.db.Create(&exp).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("This experience record already exists with the same company and position for this start date.")
		}
		return shared.Internal("failed to create experience")
	}
	return shared.OK(dto, "Experience is successfully created.")
}

func (s *ExperienceService) Update(id uuid.UUID, dto ExperienceUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the experience ID.")
	}
	exp, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.CompanyName != nil {
		exp.CompanyName = *dto.CompanyName
	}
	if dto.Position != nil {
		exp.Position = *dto.Position
	}
	if dto.StartDate != nil {
		exp.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		exp.EndDate = dto.EndDate
	}
	if dto.Description != nil {
		exp.Description = *dto.Description
	}
	merged := ExperienceCreateDto{
		UserProfileID: exp.UserProfileID,
		CompanyName:   exp.CompanyName,
		Position:      exp.Position,
		StartDate:     exp.StartDate,
		EndDate:       exp.EndDate,
		Description:   exp.Description,
	}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if dto.CompanyName != nil {
		dup, err := s.exists("LOWER(company_name) = ? AND id <> ?", strings.ToLower(exp.CompanyName), id)
		if err != nil {
			return shared.Internal("failed to check for an existing experience")
		}
		if dup {
			return shared.BadRequest(fmt.Sprintf("An experience with the company name '%s' already exists.", exp.CompanyName))
		}
	}
	exp.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(exp).Error; err != nil {
		return shared.Internal("failed to update experience")
	}
	return shared.OK(dto, "The experience is successfully updated.")
}
