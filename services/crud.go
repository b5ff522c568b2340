package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aboutme/models"
	"aboutme/shared"
)

// crud is the soft-delete CRUD core shared by all entity services: reads,
// search, pagination and deletion are identical across entities, so they are
// implemented once here. T is the gorm model, D the read DTO it maps to.
// Create and Update stay with the per-entity services because validation,
// parent checks and duplicate rules differ per entity.
type crud[T models.Entity, D any] struct {
	db         *gorm.DB
	name       string   // singular label, e.g. "Certificate"
	plural     string   // plural label, e.g. "Certificates"
	searchCols []string // columns SearchByName matches, may be table-qualified
	joins      []string // JOIN clauses required by qualified searchCols
	selects    string   // SELECT override for joined searches, e.g. "user_profiles.*"
	toDto      func(*T) D
}

// live starts a query over non-deleted rows.
func (s *crud[T, D]) live() *gorm.DB {
	return s.db.Model(new(T)).Where("is_deleted = ?", false)
}

func (s *crud[T, D]) notFoundMsg() string {
	return "The " + strings.ToLower(s.name) + " does not exist or has been deleted."
}

// GetByID returns the entity if present and not soft-deleted.
func (s *crud[T, D]) GetByID(id uuid.UUID) *shared.Response {
	e, ok := s.fetch(id)
	if !ok {
		return shared.NotFound(s.notFoundMsg())
	}
	return shared.OK(s.toDto(e), "")
}

// GetAll lists non-deleted rows, optionally limited to one page.
func (s *crud[T, D]) GetAll(pageNumber, pageSize int, isPaginated bool) *shared.Response {
	if pageNumber < 1 || pageSize < 1 {
		return shared.BadRequest("Page number and page size should be greater than 0.")
	}
	var total int64
	if err := s.live().Count(&total).Error; err != nil {
		return shared.Internal("failed to count " + strings.ToLower(s.plural))
	}
	q := s.live()
	if isPaginated {
		q = q.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}
	var items []T
	if err := q.Find(&items).Error; err != nil {
		return shared.Internal("failed to query " + strings.ToLower(s.plural))
	}
	return shared.OK(s.page(items, int(total), pageNumber, pageSize, isPaginated), s.plural+" retrieved successfully.")
}

// SearchByName matches a case-insensitive substring over the configured
// columns and paginates like GetAll. Zero matches is NotFound.
func (s *crud[T, D]) SearchByName(name string, pageNumber, pageSize int, isPaginated bool) *shared.Response {
	if strings.TrimSpace(name) == "" {
		return shared.BadRequest("Search name cannot be empty.")
	}
	if pageNumber < 1 || pageSize < 1 {
		return shared.BadRequest("Page number and page size should be greater than 0.")
	}
	pattern := "%" + strings.ToLower(name) + "%"
	conds := make([]string, len(s.searchCols))
	args := make([]any, len(s.searchCols))
	for i, col := range s.searchCols {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	where := strings.Join(conds, " OR ")
	base := func() *gorm.DB {
		q := s.live()
		for _, j := range s.joins {
			q = q.Joins(j)
		}
		if s.selects != "" {
			q = q.Select(s.selects)
		}
		return q.Where(where, args...)
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return shared.Internal("failed to search " + strings.ToLower(s.plural))
	}
	if total == 0 {
		return shared.NotFound("No " + strings.ToLower(s.plural) + " found for the given name.")
	}
	q := base()
	if isPaginated {
		q = q.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}
	var items []T
	if err := q.Find(&items).Error; err != nil {
		return shared.Internal("failed to search " + strings.ToLower(s.plural))
	}
	return shared.OK(s.page(items, int(total), pageNumber, pageSize, isPaginated), s.plural+" retrieved successfully.")
}

// Delete soft-deletes the row: the flag is monotonic, so a second delete on
// the same id reports NotFound.
func (s *crud[T, D]) Delete(id uuid.UUID) *shared.Response {
	var e T
	if err := s.db.Where("id = ?", id).First(&e).Error; err != nil || e.Deleted() {
		return shared.NotFound(s.name + " does not exist.")
	}
	updates := map[string]any{"is_deleted": true, "modified_date": time.Now().UTC()}
	if err := s.db.Model(&e).Updates(updates).Error; err != nil {
		return shared.Internal("failed to delete " + strings.ToLower(s.name))
	}
	return shared.OK(nil, s.name+" is deleted successfully.")
}

func (s *crud[T, D]) page(items []T, total, pageNumber, pageSize int, isPaginated bool) *shared.Pagination[D] {
	dtos := make([]D, 0, len(items))
	for i := range items {
		dtos = append(dtos, s.toDto(&items[i]))
	}
	size := pageSize
	if !isPaginated {
		size = total
	}
	return &shared.Pagination[D]{
		Items:      dtos,
		TotalCount: total,
		PageIndex:  pageNumber,
		PageSize:   size,
		TotalPage:  shared.TotalPages(total, pageSize),
	}
}

// fetch returns the live row by id.
func (s *crud[T, D]) fetch(id uuid.UUID) (*T, bool) {
	var e T
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&e).Error; err != nil {
		return nil, false
	}
	return &e, true
}

// exists reports whether any live row matches the condition.
func (s *crud[T, D]) exists(cond string, args ...any) (bool, error) {
	var n int64
	err := s.live().Where(cond, args...).Count(&n).Error
	return n > 0, err
}

func userExists(db *gorm.DB, id uuid.UUID) bool {
	var n int64
	db.Model(&models.User{}).Where("id = ?", id).Count(&n)
	return n > 0
}

func profileExists(db *gorm.DB, id uuid.UUID) bool {
	var n int64
	db.Model(&models.UserProfile{}).Where("id = ? AND is_deleted = ?", id, false).Count(&n)
	return n > 0
}

func templateExists(db *gorm.DB, id uuid.UUID) bool {
	var n int64
	db.Model(&models.Template{}).Where("id = ? AND is_deleted = ?", id, false).Count(&n)
	return n > 0
}

// isUniqueConstraintError catches the race where a duplicate slips in
// between the pre-check and the insert and hits the partial unique index.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint")
}
