package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all environment-driven settings.
type Config struct {
	Port        string
	DatabaseDSN string
	AutoMigrate bool

	BaseURL string

	JWTSecret            string
	JWTIssuer            string
	JWTAudience          string
	AccessTokenExpHours  int
	RefreshTokenExpHours int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	UploadDir string
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8081")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "")
	cfg.AutoMigrate = parseBool("DB_AUTO_MIGRATE", true)
	cfg.BaseURL = getEnv("APP_BASE_URL", "http://localhost:8081")
	cfg.JWTSecret = getEnv("JWT_SECRET", "dev-insecure-secret-change")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "aboutme")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "aboutme")
	cfg.AccessTokenExpHours = parseInt("JWT_ACCESS_EXPIRATION_HOURS", 1)
	cfg.RefreshTokenExpHours = parseInt("JWT_REFRESH_EXPIRATION_HOURS", 168)
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPPort = parseInt("SMTP_PORT", 587)
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "no-reply@aboutme.local")
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func parseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
