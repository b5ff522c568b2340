package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboutme/shared"
)

func profileDto(userID uuid.UUID, templateID *uuid.UUID) UserProfileCreateDto {
	return UserProfileCreateDto{
		UserID:          userID,
		Bio:             "building things for the web",
		ProfileImageUrl: "https://cdn.example.com/me.png",
		WebsiteUrl:      "https://example.com",
		PhoneNumber:     "5551234567",
		Location:        "Ankara",
		TemplateID:      templateID,
	}
}

func TestUserProfileCreateOnePerUser(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "profile@example.com")
	tpl := seedTemplate(t, db, "minimal")
	svc := NewUserProfileService(db)

	resp := svc.Create(profileDto(user.ID, &tpl.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User profile successfully created.", resp.Message)

	dup := svc.Create(profileDto(user.ID, &tpl.ID))
	assert.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "A profile for this user already exists.", dup.Message)
}

func TestUserProfileCreateValidation(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "profile@example.com")
	tpl := seedTemplate(t, db, "minimal")
	svc := NewUserProfileService(db)

	dto := profileDto(user.ID, &tpl.ID)
	dto.PhoneNumber = "call-me-maybe"
	resp := svc.Create(dto)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Message, "Phone Number must contain only digits.")

	dto = profileDto(user.ID, nil)
	resp = svc.Create(dto)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Message, "Template Id is required.")
}

func TestUserProfileCreateUnknownTemplate(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "profile@example.com")
	svc := NewUserProfileService(db)

	missing := uuid.New()
	resp := svc.Create(profileDto(user.ID, &missing))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Template does not exist.", resp.Message)
}

func TestUserProfileSearchByOwnerName(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "profile@example.com")
	tpl := seedTemplate(t, db, "minimal")
	svc := NewUserProfileService(db)
	require.Equal(t, http.StatusOK, svc.Create(profileDto(user.ID, &tpl.ID)).StatusCode)

	// seedUser names everyone "Test User"; the search joins the users table.
	resp := svc.SearchByName("test", 1, 10, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := resp.Data.(*shared.Pagination[UserProfileGetDto])
	require.Len(t, page.Items, 1)
	assert.Equal(t, user.ID, page.Items[0].UserID)
}

func TestUserProfileSetProfileImage(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "profile@example.com")
	profile := seedProfile(t, db, user.ID)
	svc := NewUserProfileService(db)

	resp := svc.SetProfileImage(profile.ID, "http://localhost:8081/public/new.jpg")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dto := resp.Data.(UserProfileGetDto)
	assert.Equal(t, "http://localhost:8081/public/new.jpg", dto.ProfileImageUrl)

	missing := svc.SetProfileImage(uuid.New(), "http://localhost:8081/public/x.jpg")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
