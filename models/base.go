package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the fields shared by every portfolio entity. IsDeleted is a
// soft-delete flag: a deleted row stays in storage but is excluded from all
// read paths, and the flag only ever moves from false to true.
type Base struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedDate  time.Time `gorm:"not null"`
	ModifiedDate time.Time `gorm:"not null"`
	IsDeleted    bool      `gorm:"not null;default:false;index"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	if b.CreatedDate.IsZero() {
		b.CreatedDate = now
	}
	if b.ModifiedDate.IsZero() {
		b.ModifiedDate = now
	}
	return nil
}

// Deleted reports the soft-delete flag.
func (b Base) Deleted() bool { return b.IsDeleted }

// Entity is satisfied by every model embedding Base.
type Entity interface {
	Deleted() bool
}
