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

type CertificateGetDto struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	Title          string     `json:"title"`
	Issuer         string     `json:"issuer"`
	IssueDate      time.Time  `json:"issueDate"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	CertificateUrl string     `json:"certificateUrl"`
}

type CertificateCreateDto struct {
	UserID         uuid.UUID  `json:"userId"`
	Title          string     `json:"title"`
	Issuer         string     `json:"issuer"`
	IssueDate      time.Time  `json:"issueDate"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	CertificateUrl string     `json:"certificateUrl"`
}

type CertificateUpdateDto struct {
	ID             uuid.UUID  `json:"id"`
	Title          *string    `json:"title"`
	Issuer         *string    `json:"issuer"`
	IssueDate      *time.Time `json:"issueDate"`
	ExpiryDate     *time.Time `json:"expiryDate"`
	CertificateUrl *string    `json:"certificateUrl"`
}

func (d CertificateCreateDto) validate() string {
	var e errs
	if strings.TrimSpace(d.Title) == "" {
		e.add("Title is required")
	} else if len(d.Title) > 100 {
		e.add("Title cannot exceed 100 characters.")
	}
	if strings.TrimSpace(d.Issuer) == "" {
		e.add("Issuer is required")
	} else if len(d.Issuer) > 100 {
		e.add("Issuer cannot exceed 100 characters")
	}
	if d.IssueDate.IsZero() {
		e.add("Issue date is required.")
	} else if d.IssueDate.After(time.Now()) {
		e.add("Issue date cannot be in the future.")
	}
	if !isURL(d.CertificateUrl) {
		e.add("Certificate URL is not valid.")
	}
	if d.ExpiryDate != nil && !d.ExpiryDate.After(d.IssueDate) {
		e.add("Expiry date must be after the issue date.")
	}
	if d.UserID == uuid.Nil {
		e.add("User Id is required.")
	}
	return e.join()
}

// CertificateService manages the certificates a user earned. The title is
// the business key: at most one live certificate per title.
type CertificateService struct {
	crud[models.Certificate, CertificateGetDto]
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{crud[models.Certificate, CertificateGetDto]{
		db:         db,
		name:       "Certificate",
		plural:     "Certificates",
		searchCols: []string{"title"},
		toDto: func(c *models.Certificate) CertificateGetDto {
			return CertificateGetDto{
				ID:             c.ID,
				UserID:         c.UserID,
				Title:          c.Title,
				Issuer:         c.Issuer,
				IssueDate:      c.IssueDate,
				ExpiryDate:     c.ExpiryDate,
				CertificateUrl: c.CertificateUrl,
			}
		},
	}}
}

func (s *CertificateService) Create(dto CertificateCreateDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if !userExists(s.db, dto.UserID) {
		return shared.BadRequest("User does not exist.")
	}
	dup, err := s.exists("LOWER(title) = ?", strings.ToLower(dto.Title))
	if err != nil {
		return shared.Internal("failed to check for an existing certificate")
	}
	if dup {
		return shared.BadRequest("A certificate with this title already exists.")
	}
	cert := models.Certificate{
		UserID:         dto.UserID,
		Title:          dto.Title,
		Issuer:         dto.Issuer,
		IssueDate:      dto.IssueDate,
		ExpiryDate:     dto.ExpiryDate,
		CertificateUrl: dto.CertificateUrl,
	}
	if err := s.db.Create(&cert).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("A certificate with this title already exists.")
		}
		return shared.Internal("failed to create certificate")
	}
	return shared.OK(dto, "Certificate is successfully created.")
}

// Update applies only the non-null fields of the DTO. Date ordering is
// validated against the merged values, so patching ExpiryDate alone is still
// checked against the stored IssueDate.
func (s *CertificateService) Update(id uuid.UUID, dto CertificateUpdateDto) *shared.Response {
	if id != dto.ID {
		return shared.BadRequest("The provided ID does not match the certificate ID.")
	}
	cert, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	if dto.Title != nil {
		cert.Title = *dto.Title
	}
	if dto.Issuer != nil {
		cert.Issuer = *dto.Issuer
	}
	if dto.IssueDate != nil {
		cert.IssueDate = *dto.IssueDate
	}
	if dto.ExpiryDate != nil {
		cert.ExpiryDate = dto.ExpiryDate
	}
	if dto.CertificateUrl != nil {
		cert.CertificateUrl = *dto.CertificateUrl
	}
	merged := CertificateCreateDto{
		UserID:         cert.UserID,
		Title:          cert.Title,
		Issuer:         cert.Issuer,
		IssueDate:      cert.IssueDate,
		ExpiryDate:     cert.ExpiryDate,
		CertificateUrl: cert.CertificateUrl,
	}
	if msg := merged.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	if dto.Title != nil {
		dup, err := s.exists("LOWER(title) = ? AND id <> ?", strings.ToLower(cert.Title), id)
		if err != nil {
			return shared.Internal("failed to check for an existing certificate")
		}
		if dup {
			return shared.BadRequest(fmt.Sprintf("A certificate with the title '%s' already exists.", cert.Title))
		}
	}
	cert.ModifiedDate = time.Now().UTC()
	if err := s.db.Save(cert).Error; err != nil {
		return shared.Internal("failed to update certificate")
	}
	return shared.OK(dto, "The certificate is successfully updated.")
}
