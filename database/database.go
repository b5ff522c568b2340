package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aboutme/config"
	"aboutme/models"
)

// Connect opens the Postgres database, runs migrations (unless disabled via
// DB_AUTO_MIGRATE) and seeds the master roles.
func Connect(cfg config.Config) *gorm.DB {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN is not set. This service requires a Postgres DSN in DATABASE_DSN.")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	if cfg.AutoMigrate {
		Migrate(db)
	}
	SeedRoles(db)
	return db
}

// Migrate runs AutoMigrate model by model so a failure on one table does not
// block the others, then applies the partial unique indexes that back the
// duplicate checks.
func Migrate(db *gorm.DB) {
	for _, m := range []any{
		&models.Role{},
		&models.User{},
		&models.Template{},
		&models.UserProfile{},
		&models.Certificate{},
		&models.Education{},
		&models.Experience{},
		&models.SocialMedia{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("migration warning (%T): %v", m, err)
		}
	}
	ensureUniqueIndexes(db)
}

// ensureUniqueIndexes creates unique indexes over each entity's business key
// scoped to live rows, closing the race between the duplicate check and the
// insert. Partial index syntax here is Postgres-specific.
func ensureUniqueIndexes(db *gorm.DB) {
	if db.Dialector.Name() != "postgres" {
		return
	}
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_certificates_live_title ON certificates (lower(title)) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_educations_live_key ON educations (lower(school_name), lower(degree), lower(field_of_study), start_date) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_experiences_live_key ON experiences (lower(company_name), lower(position), start_date) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_social_medias_live_key ON social_medias (lower(platform), lower(url)) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_templates_live_key ON templates (lower(name), lower(preview_image_url), lower(css_file_url)) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uidx_user_profiles_live_user ON user_profiles (user_id) WHERE NOT is_deleted`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			log.Printf("index warning: %v", err)
		}
	}
}

// SeedRoles makes sure the master roles exist (idempotent).
func SeedRoles(db *gorm.DB) {
	for _, name := range []string{"admin", "user"} {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", name).Count(&cnt)
		if cnt == 0 {
			if err := db.Create(&models.Role{Name: name}).Error; err != nil {
				log.Printf("failed to seed role %s: %v", name, err)
			}
		}
	}
}
