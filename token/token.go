package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aboutme/models"
)

// Issuer mints signed access tokens and random opaque tokens. It holds no
// state beyond configuration.
type Issuer struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

func NewIssuer(secret, issuer, audience string, accessTTL time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, audience: audience, accessTTL: accessTTL}
}

// AccessToken signs an HS256 token carrying the user's identity claims and
// role names.
func (i *Issuer) AccessToken(u *models.User, roles []string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     u.ID.String(),
		"name":    u.Name,
		"surname": u.Surname,
		"email":   u.Email,
		"roles":   roles,
		"iss":     i.issuer,
		"aud":     i.audience,
		"iat":     now.Unix(),
		"exp":     now.Add(i.accessTTL).Unix(),
	})
	return t.SignedString(i.secret)
}

// Parse validates a signed access token and returns its claims.
func (i *Issuer) Parse(tokenString string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Opaque returns a random 32-byte URL-safe token, used for refresh and
// email-confirmation tokens.
func Opaque() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
