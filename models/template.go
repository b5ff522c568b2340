package models

// Template is a presentation theme referenced by zero or more profiles.
type Template struct {
	Base
	Name            string `gorm:"size:100;not null"`
	PreviewImageUrl string `gorm:"size:512;not null"`
	CssFileUrl      string `gorm:"size:512;not null"`
}
