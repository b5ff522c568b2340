package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aboutme/config"
	"aboutme/mailer"
	"aboutme/models"
	"aboutme/shared"
	"aboutme/token"
)

type RegisterDto struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginDto struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPairDto is the login/refresh payload; expirations are in hours.
type TokenPairDto struct {
	AccessToken            string `json:"accessToken"`
	AccessTokenExpiration  int    `json:"accessTokenExpiration"`
	RefreshToken           string `json:"refreshToken"`
	RefreshTokenExpiration int    `json:"refreshTokenExpiration"`
}

func (d RegisterDto) validate() string {
	var e errs
	if strings.TrimSpace(d.Name) == "" {
		e.add("Name is required")
	} else if len(d.Name) < 3 {
		e.add("Name must be at least 3 characters long")
	}
	if !isEmail(d.Email) || len(d.Email) < 8 {
		e.add("Email is not valid")
	}
	if d.Password == "" {
		e.add("Password is required")
	} else if len(d.Password) < 6 {
		e.add("Password must be at least 6 characters long")
	}
	if d.ConfirmPassword != d.Password {
		e.add("Confirm Password does not match with password")
	}
	return e.join()
}

func (d LoginDto) validate() string {
	var e errs
	if !isEmail(d.Email) || len(d.Email) < 8 {
		e.add("Email is not valid")
	}
	if d.Password == "" {
		e.add("Password is required")
	}
	return e.join()
}

// AuthService coordinates registration, the login/refresh token lifecycle
// and email confirmation against the user store.
type AuthService struct {
	db     *gorm.DB
	issuer *token.Issuer
	mail   mailer.Sender
	cfg    config.Config
}

func NewAuthService(db *gorm.DB, issuer *token.Issuer, mail mailer.Sender, cfg config.Config) *AuthService {
	return &AuthService{db: db, issuer: issuer, mail: mail, cfg: cfg}
}

// Register creates an unconfirmed user with the default "user" role and
// queues a confirmation email. The password and the confirmation token never
// appear in the response.
func (s *AuthService) Register(dto RegisterDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	var n int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&n)
	if n > 0 {
		return shared.BadRequest("This email is already registered.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return shared.Internal("failed to hash password")
	}
	confirmToken, err := token.Opaque()
	if err != nil {
		return shared.Internal("failed to generate confirmation token")
	}
	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(dto.Name),
		Surname:      strings.TrimSpace(dto.Surname),
		ConfirmToken: confirmToken,
	}
	var role models.Role
	if err := s.db.Where("name = ?", "user").FirstOrCreate(&role, models.Role{Name: "user"}).Error; err != nil {
		return shared.Internal("failed to ensure user role")
	}
	user.Roles = []models.Role{role}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("This email is already registered.")
		}
		return shared.Internal("failed to create user")
	}

	link := fmt.Sprintf("%s/api/auths/confirm-email?userId=%s&token=%s",
		s.cfg.BaseURL, user.ID, url.QueryEscape(confirmToken))
	s.mail.Enqueue(user.Email, "Confirm your email",
		fmt.Sprintf("<p>Hello %s,</p><p>Please click the link below to confirm your email address:</p><a href='%s'>Confirm My Email</a>", user.Name, link))

	return shared.Created(nil, "User registered successfully. Please check your email to confirm.")
}

// Login verifies the credentials, requires a confirmed email, and issues a
// fresh access/refresh token pair. The refresh token is rotated: any token
// issued earlier is overwritten and becomes unusable.
func (s *AuthService) Login(dto LoginDto) *shared.Response {
	if msg := dto.validate(); msg != "" {
		return shared.BadRequest(msg)
	}
	var user models.User
	err := s.db.Preload("Roles").Where("email = ?", strings.ToLower(strings.TrimSpace(dto.Email))).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(dto.Password)) != nil {
		return shared.BadRequest("Invalid email or password.")
	}
	if !user.EmailConfirmed {
		return shared.BadRequest("Please confirm your email address before logging in.")
	}
	pair, resp := s.issueTokens(&user)
	if resp != nil {
		return resp
	}
	return shared.OK(pair, "User successfully logged in.")
}

// RefreshToken exchanges a stored, unexpired refresh token for a new token
// pair, rotating the stored token.
func (s *AuthService) RefreshToken(refreshToken string) *shared.Response {
	if strings.TrimSpace(refreshToken) == "" {
		return shared.BadRequest("Refresh token is required.")
	}
	var user models.User
	if err := s.db.Preload("Roles").Where("refresh_token = ?", refreshToken).First(&user).Error; err != nil {
		return shared.BadRequest("This refresh token is not valid.")
	}
	if user.RefreshTokenExpiry.Before(time.Now().UTC()) {
		return shared.BadRequest("This refresh token is expired.")
	}
	pair, resp := s.issueTokens(&user)
	if resp != nil {
		return resp
	}
	return shared.OK(pair, "New tokens are created.")
}

// ConfirmEmail validates the emailed token and flips the confirmation flag.
// The outcome is reported as a human-readable status only.
func (s *AuthService) ConfirmEmail(userID, rawToken string) *shared.Response {
	id, err := uuid.Parse(userID)
	if err != nil {
		return shared.NotFound("Invalid user ID.")
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return shared.NotFound("Invalid user ID.")
	}
	if user.EmailConfirmed {
		return shared.OK(nil, "Your email has been confirmed successfully!")
	}
	if user.ConfirmToken == "" || rawToken != user.ConfirmToken {
		return shared.BadRequest("Email confirmation failed. The link may have expired or is invalid.")
	}
	updates := map[string]any{"email_confirmed": true, "confirm_token": ""}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return shared.Internal("failed to confirm email")
	}
	return shared.OK(nil, "Your email has been confirmed successfully!")
}

func (s *AuthService) issueTokens(user *models.User) (*TokenPairDto, *shared.Response) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}
	access, err := s.issuer.AccessToken(user, roles)
	if err != nil {
		return nil, shared.Internal("failed to generate access token")
	}
	refresh, err := token.Opaque()
	if err != nil {
		return nil, shared.Internal("failed to generate refresh token")
	}
	expiry := time.Now().UTC().Add(time.Duration(s.cfg.RefreshTokenExpHours) * time.Hour)
	updates := map[string]any{"refresh_token": refresh, "refresh_token_expiry": expiry}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, shared.Internal("failed to persist refresh token")
	}
	return &TokenPairDto{
		AccessToken:            access,
		AccessTokenExpiration:  s.cfg.AccessTokenExpHours,
		RefreshToken:           refresh,
		RefreshTokenExpiration: s.cfg.RefreshTokenExpHours,
	}, nil
}
