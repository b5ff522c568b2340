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

type TemplateGetDto struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PreviewImageUrl string    `json:"previewImageUrl"`
	CssFileUrl      string    `json:"cssFileUrl"`
}

type TemplateCreateDto struct {
	Name            string `json:"name"`
	PreviewImageUrl string `json:"previewImageUrl"`
	CssFileUrl      string `json:"cssFileUrl"`
}

type TemplateUpdateDto struct {
	ID              uuid.UUID `json:"id"`
	Name            *string   `json:"name"`
	PreviewImageUrl *string   `json:"previewImageUrl"`
	CssFileUrl      *string   `json:"cssFileUrl"`
}

func (d TemplateCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.Name) == "" {
		e.add("Name is required.")
	} else if len(d.Name) > 100 {
		e.add("Name cannot exceed 100 characters.")
	}
	if !isURL(d.PreviewImageUrl) {
		e.add("Preview Image URL is not valid.")
	}
	if !isURL(d.CssFileUrl) {
		e.add("CSS file URL is not valid.")
	}
	return e.join()
}

// TemplateService manages presentation themes. Templates are independent of
// users; the business key is name plus both asset URLs.
type TemplateService struct {
	crud[models.Template, TemplateGetDto]
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{crud[models.Template, TemplateGetDto]{
		db:         db,
		name:       "Template",
		plural:     "Templates",
		searchCols: []string{"name"},
		toDto: func(t *models.Template) TemplateGetDto {
			return TemplateGetDto{ID: t.ID, Name: t.Name, PreviewImageUrl: t.PreviewImageUrl, CssFileUrl: t.CssFileUrl}
		},
	}}
}

func (s *TemplateService) Create(dto TemplateCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	dup, err := s.exists(
		"LOWER(name) = ? AND LOWER(preview_image_url) = ? AND LOWER(css_file_url) = ?",
		strings.ToLower(dto.Name), strings.ToLower(dto.PreviewImageUrl), strings.ToLower(dto.CssFileUrl),
	)
	if err != nil {
		return shared.Internal("failed to check for an existing template")
	}
	if dup {
		return shared.BadRequest("This template already exists with the same name, preview image, and CSS file.")
	}
	tpl := models.Template{Name: dto.Name, PreviewImageUrl: dto.PreviewImageUrl, CssFileUrl: dto.CssFileUrl}
	if err := s.db.Create(&tpl).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("This template already exists with the same name, preview image, and CSS file.")
		}
		return shared.Internal("failed to create template")
	}
	return shared.OK(dto, "Template is successfully created.")
}

func (s *TemplateService) Update(id uuid.UUID, dto TemplateUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the template ID.")
	}
	tpl, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.Name != nil {
		tpl.Name = *dto.Name
	}
	if dto.PreviewImageUrl != nil {
		tpl.PreviewImageUrl = *dto.PreviewImageUrl
	}
	if dto.CssFileUrl != nil {
		tpl.CssFileUrl = *dto.CssFileUrl
	}
	merged := TemplateCreateDto{Name: tpl.Name, PreviewImageUrl: tpl.PreviewImageUrl, CssFileUrl: tpl.CssFileUrl}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if dto.Name != nil {
		dup, err := s.exists("LOWER(name) = ? AND id <> ?", strings.ToLower(tpl.Name), id)
		if err != nil {
			return shared.Internal("failed to check for an existing template")
		}
		if dup {
			return shared.BadRequest(fmt.Sprintf("A template with the name '%s' already exists.", tpl.Name))
		}
	}
	tpl.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(tpl).Error; err != nil {
		return shared.Internal("failed to update template")
	}
	return shared.OK(dto, "The template is successfully updated.")
}
