package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboutme/models"
)

func TestRoleCreateAndDuplicate(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)

	resp := svc.CreateRole("editor")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dup := svc.CreateRole("editor")
	assert.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "Role already exists.", dup.Message)

	blank := svc.CreateRole("   ")
	assert.Equal(t, http.StatusBadRequest, blank.StatusCode)
}

func TestRoleListIncludesSeeded(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	// Connect seeds admin and user in production; the test DB only runs
	// migrations, so seed here.
	require.Equal(t, http.StatusCreated, svc.CreateRole("admin").StatusCode)
	require.Equal(t, http.StatusCreated, svc.CreateRole("user").StatusCode)

	resp := svc.GetAllRoles()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"admin", "user"}, resp.Data.([]string))
}

func TestRoleDelete(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	require.Equal(t, http.StatusCreated, svc.CreateRole("temp").StatusCode)

	assert.Equal(t, http.StatusOK, svc.DeleteRole("temp").StatusCode)
	assert.Equal(t, http.StatusNotFound, svc.DeleteRole("temp").StatusCode)
}

func TestRoleMembership(t *testing.T) {
	db := testDB(t)
	svc := NewRoleService(db)
	user := seedUser(t, db, "member@example.com")
	require.Equal(t, http.StatusCreated, svc.CreateRole("admin").StatusCode)

	resp := svc.AddUserToRole(user.ID.String(), "admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.User
	require.NoError(t, db.Preload("Roles").First(&got, "id = ?", user.ID).Error)
	require.Len(t, got.Roles, 1)
	assert.Equal(t, "admin", got.Roles[0].Name)

	require.Equal(t, http.StatusOK, svc.RemoveUserFromRole(user.ID.String(), "admin").StatusCode)
	require.NoError(t, db.Preload("Roles").First(&got, "id = ?", user.ID).Error)
	assert.Empty(t, got.Roles)

	missing := svc.AddUserToRole("not-a-uuid", "admin")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
