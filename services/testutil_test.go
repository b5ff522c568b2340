package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aboutme/database"
	"aboutme/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Email: email, PasswordHash: hash, Name: "Test", Surname: "User", EmailConfirmed: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedTemplate(t *testing.T, db *gorm.DB, name string) *models.Template {
	t.Helper()
	tpl := &models.Template{
		Name:            name,
		PreviewImageUrl: "https://cdn.example.com/" + name + ".png",
		CssFileUrl:      "https://cdn.example.com/" + name + ".css",
	}
	require.NoError(t, db.Create(tpl).Error)
	return tpl
}

func seedProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{
		UserID:          userID,
		Bio:             "software engineer",
		ProfileImageUrl: "https://cdn.example.com/me.png",
		WebsiteUrl:      "https://example.com",
		PhoneNumber:     "5551234567",
		Location:        "Istanbul",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n).Truncate(time.Second)
}
