package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboutme/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", "aboutme", "aboutme-clients", time.Hour)
	user := &models.User{ID: uuid.New(), Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"}

	signed, err := issuer.AccessToken(user, []string{"user", "admin"})
	require.NoError(t, err)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "Ada", claims["name"])
	assert.Equal(t, "aboutme", claims["iss"])
	assert.Equal(t, "aboutme-clients", claims["aud"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Len(t, roles, 2)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	signed, err := NewIssuer("secret-a", "aboutme", "aboutme", time.Hour).AccessToken(user, nil)
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", "aboutme", "aboutme", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com"}
	issuer := NewIssuer("test-secret", "aboutme", "aboutme", -time.Minute)
	signed, err := issuer.AccessToken(user, nil)
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.Error(t, err)
}

func TestOpaqueIsRandom(t *testing.T) {
	a, err := Opaque()
	require.NoError(t, err)
	b, err := Opaque()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43) // 32 bytes, unpadded URL-safe base64
}
