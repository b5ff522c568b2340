package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboutme/shared"
)

func eduDto(profileID uuid.UUID) EducationCreateDto {
	return EducationCreateDto{
		UserProfileID: profileID,
		SchoolName:    "Bogazici University",
		Degree:        "BSc",
		FieldOfStudy:  "Computer Engineering",
		StartDate:     daysAgo(365 * 4),
	}
}

func TestEducationCreateDuplicateKey(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "edu@example.com")
	profile := seedProfile(t, db, user.ID)
	svc := NewEducationService(db)

	require.Equal(t, http.StatusOK, svc.Create(eduDto(profile.ID)).StatusCode)

	dup := svc.Create(eduDto(profile.ID))
	assert.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Contains(t, dup.Message, "already exists")

	// Same school and degree but a different start date is a distinct record.
	other := eduDto(profile.ID)
	other.StartDate = daysAgo(365 * 2)
	assert.Equal(t, http.StatusOK, svc.Create(other).StatusCode)
}

func TestEducationCreateRequiresProfile(t *testing.T) {
	db := testDB(t)
	svc := NewEducationService(db)

	resp := svc.Create(eduDto(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User profile does not exist.", resp.Message)
}

func TestEducationUpdateEndDateAgainstStoredStart(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "edu@example.com")
	profile := seedProfile(t, db, user.ID)
	svc := NewEducationService(db)

	require.Equal(t, http.StatusOK, svc.Create(eduDto(profile.ID)).StatusCode)
	list := svc.GetAll(1, 10, false)
	page := list.Data.(*shared.Pagination[EducationGetDto])
	require.Len(t, page.Items, 1)
	id := page.Items[0].ID

	before := daysAgo(365 * 5)
	resp := svc.Update(id, EducationUpdateDto{ID: id, EndDate: &before})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "End date must be after the start date.", resp.Message)

	after := daysAgo(10)
	resp = svc.Update(id, EducationUpdateDto{ID: id, EndDate: &after})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEducationSearchAcrossFields(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "edu@example.com")
	profile := seedProfile(t, db, user.ID)
	svc := NewEducationService(db)

	require.Equal(t, http.StatusOK, svc.Create(eduDto(profile.ID)).StatusCode)

	byDegree := svc.SearchByName("bsc", 1, 10, false)
	require.Equal(t, http.StatusOK, byDegree.StatusCode)

	byField := svc.SearchByName("computer", 1, 10, false)
	require.Equal(t, http.StatusOK, byField.StatusCode)
	page := byField.Data.(*shared.Pagination[EducationGetDto])
	assert.Len(t, page.Items, 1)
}
