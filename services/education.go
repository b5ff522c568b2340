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

type EducationGetDto struct {
	ID            uuid.UUID  `json:"id"`
	UserProfileID uuid.UUID  `json:"userProfileId"`
	SchoolName    string     `json:"schoolName"`
	Degree        string     `json:"degree"`
	FieldOfStudy  string     `json:"fieldOfStudy"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

type EducationCreateDto struct {
	UserProfileID uuid.UUID  `json:"userProfileId"`
	SchoolName    string     `json:"schoolName"`
	Degree        string     `json:"degree"`
	FieldOfStudy  string     `json:"fieldOfStudy"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

type EducationUpdateDto struct {
	ID           uuid.UUID  `json:"id"`
	SchoolName   *string    `json:"schoolName"`
	Degree       *string    `json:"degree"`
	FieldOfStudy *string    `json:"fieldOfStudy"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

func (d EducationCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.SchoolName) == "" {
		e.add("School name is required.")
	} else if len(d.SchoolName) > 100 {
		e.add("School name cannot exceed 100 characters.")
	}
	if strings.TrimSpace(d.Degree) == "" {
		e.add("Degree is required.")
	} else if len(d.Degree) > 100 {
		e.add("Degree cannot exceed 100 characters.")
	}
	if strings.TrimSpace(d.FieldOfStudy) == "" {
		e.add("Field of study is required.")
	} else if len(d.FieldOfStudy) > 100 {
		e.add("Field of study cannot exceed 100 characters.")
	}
	if d.StartDate.IsZero() {
		e.add("Start date is required.")
	} else if d.StartDate.After(time.Now()) {
		e.add("Start date cannot be in the future.")
	}
	if d.EndDate != nil && !d.EndDate.After(d.StartDate) {
		e.add("End date must be after the start date.")
	}
	if d.UserProfileID == uuid.Nil {
		e.add("User Profile Id is required.")
	}
	return e.join()
}

// EducationService manages schooling entries. The business key is the
// combination of school, degree, field of study and start date.
type EducationService struct {
	crud[models.Education, EducationGetDto]
}

func NewEducationService(db *gorm.DB) *EducationService {
	return &EducationService{crud[models.Education, EducationGetDto]{
		db:         db,
		name:       "Education",
		plural:     "Educations",
		searchCols: []string{"school_name", "degree", "field_of_study"},
		toDto: func(e *models.Education) EducationGetDto {
			return EducationGetDto{
				ID:            e.ID,
				UserProfileID: e.UserProfileID,
				SchoolName:    e.SchoolName,
				Degree:        e.Degree,
				FieldOfStudy:  e.FieldOfStudy,
				StartDate:     e.StartDate,
				EndDate:       e.EndDate,
			}
		},
	}}
}

func (s *EducationService) Create(dto EducationCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if !profileExists(s.db, dto.UserProfileID) {
		return shared.BadRequest("User profile does not exist.")
	}
	dup, err := s.exists(
		"LOWER(school_name) = ? AND LOWER(degree) = ? AND LOWER(field_of_study) = ? AND start_date = ?",
		strings.ToLower(dto.SchoolName), strings.ToLower(dto.Degree), strings.ToLower(dto.FieldOfStudy), dto.StartDate,
	)
	if err != nil {
		return shared.Internal("failed to check for an existing education")
	}
	if dup {
		return shared.BadRequest("This education record already exists with the same school, degree, and field of study for this start date.")
	}
	edu := models.Education{
		UserProfileID: dto.UserProfileID,
		SchoolName:    dto.SchoolName,
		Degree:        dto.Degree,
		FieldOfStudy:  dto.FieldOfStudy,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
	}
	if err := s.db.Create(&edu).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("This education record already exists with the same school, degree, and field of study for this start date.")
		}
		return shared.Internal("failed to create education")
	}
	return shared.OK(dto, "Education is successfully created.")
}

func (s *EducationService) Update(id uuid.UUID, dto EducationUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the education ID.")
	}
	edu, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.SchoolName != nil {
		edu.SchoolName = *dto.SchoolName
	}
	if dto.Degree != nil {
		edu.Degree = *dto.Degree
	}
	if dto.FieldOfStudy != nil {
		edu.FieldOfStudy = *dto.FieldOfStudy
	}
	if dto.StartDate != nil {
		edu.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		edu.EndDate = dto.EndDate
	}
	merged := EducationCreateDto{
		UserProfileID: edu.UserProfileID,
		SchoolName:    edu.SchoolName,
		Degree:        edu.Degree,
		FieldOfStudy:  edu.FieldOfStudy,
		StartDate:     edu.StartDate,
		EndDate:       edu.EndDate,
	}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if dto.SchoolName != nil {
		dup, err := s.exists("LOWER(school_name) = ? AND id <> ?", strings.ToLower(edu.SchoolName), id)
		if err != nil {
			return shared.Internal("failed to check for an existing education")
		}
		if dup {
			return shared.BadRequest(fmt.Sprintf("An education with the school name '%s' already exists.", edu.SchoolName))
		}
	}
	edu.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(edu).Error; err != nil {
		return shared.Internal("failed to update education")
	}
	return shared.OK(dto, "The education is successfully updated.")
}
