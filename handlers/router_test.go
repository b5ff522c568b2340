package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aboutme/config"
	"aboutme/database"
	"aboutme/models"
	"aboutme/token"
)

type nopSender struct{}

func (nopSender) Enqueue(to, subject, htmlBody string) {}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	database.SeedRoles(db)

	cfg := config.Config{
		Port:                 "8081",
		BaseURL:              "http://localhost:8081",
		AccessTokenExpHours:  1,
		RefreshTokenExpHours: 168,
		UploadDir:            t.TempDir(),
	}
	issuer := token.NewIssuer("test-secret", "aboutme", "aboutme", time.Hour)
	return Router(db, issuer, nopSender{}, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func registerAndConfirm(t *testing.T, r *gin.Engine, db *gorm.DB, email string) models.User {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/auths/register", gin.H{
		"name": "Ada", "surname": "Lovelace", "email": email,
		"password": "secret123", "confirmPassword": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)

	confirm := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/auths/confirm-email?userId=%s&token=%s", user.ID, url.QueryEscape(user.ConfirmToken)), nil)
	cw := httptest.NewRecorder()
	r.ServeHTTP(cw, confirm)
	require.Equal(t, http.StatusOK, cw.Code)
	assert.Contains(t, cw.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, cw.Body.String(), "confirmed successfully")
	return user
}

func login(t *testing.T, r *gin.Engine, email string) (access, refresh string) {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auths/login", gin.H{
		"email": email, "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken, pair.RefreshToken
}

func TestAuthFlowOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	registerAndConfirm(t, r, db, "ada@example.com")
	_, refresh := login(t, r, "ada@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/auths/refresh-token", gin.H{"refreshToken": refresh}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New tokens are created.", env.Message)

	// The old token was rotated away.
	w, _ = doJSON(t, r, http.MethodPost, "/api/auths/refresh-token", gin.H{"refreshToken": refresh}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTemplateCrudOverHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/templates", gin.H{
		"name":            "minimal",
		"previewImageUrl": "https://cdn.example.com/minimal.png",
		"cssFileUrl":      "https://cdn.example.com/minimal.css",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Template is successfully created.", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/templates/all?pageNumber=1&pageSize=10&isPaginated=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalCount)

	id := page.Items[0].ID
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/templates/"+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/templates/"+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/templates/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/templates/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRolesAdminGuard(t *testing.T) {
	r, db := newTestServer(t)
	user := registerAndConfirm(t, r, db, "ada@example.com")

	// No token at all.
	w, _ := doJSON(t, r, http.MethodGet, "/api/roles", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A plain user holds no admin role.
	access, _ := login(t, r, "ada@example.com")
	w, _ = doJSON(t, r, http.MethodGet, "/api/roles", nil, access)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Grant admin directly, then a fresh login carries the role claim.
	var admin models.Role
	require.NoError(t, db.Where("name = ?", "admin").First(&admin).Error)
	var u models.User
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	require.NoError(t, db.Model(&u).Association("Roles").Append(&admin))

	access, _ = login(t, r, "ada@example.com")
	w, env := doJSON(t, r, http.MethodGet, "/api/roles", nil, access)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Roles retrieved successfully.", env.Message)
}
