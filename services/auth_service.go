package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
)

const (
	maxEmailLength    = 255
	minPasswordLength = 6
	maxPasswordLength = 100
)

// UserStore is the persistence used by AuthService
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	SaveMetadata(ctx context.Context, user *models.User) error
}

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by sign up and sign in
type AuthResult struct {
	Tokens   *TokenPair `json:"tokens"`
	Identity *Identity  `json:"user"`
}

// AuthService manages accounts and sessions
type AuthService struct {
	users    UserStore
	jwt      *JWTService
	gate     *AdminGate
	validate *validator.Validate
	log      *zap.Logger
}

func NewAuthService(users UserStore, jwt *JWTService, gate *AdminGate, log *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwt:      jwt,
		gate:     gate,
		validate: validator.New(),
		log:      log,
	}
}

// ValidateSignUp checks the credentials form without touching the store
func (s *AuthService) ValidateSignUp(req SignUpRequest) error {
	verr := &ValidationError{}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		verr.Add("email", "fieldRequired")
	case len(email) > maxEmailLength || s.validate.Var(email, "email") != nil:
		verr.Add("email", "invalidEmail")
	}

	switch n := utf8.RuneCountInString(req.Password); {
	case n < minPasswordLength:
		verr.Add("password", "passwordTooShort")
	case n > maxPasswordLength:
		verr.Add("password", "passwordTooLong")
	}

	if req.ConfirmPassword != req.Password {
		verr.Add("confirm_password", "passwordMismatch")
	}

	return verr.Err()
}

// SignUp creates an account and signs it in
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest, client ClientInfo) (*AuthResult, error) {
	if err := s.ValidateSignUp(req); err != nil {
		return nil, err
	}

	email := models.NormalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Metadata:     datatypes.JSONMap{},
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.Info("user registered", zap.String("user_id", user.ID.String()))

	return s.issue(ctx, user, client)
}

// SignIn checks credentials and opens a session
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest, client ClientInfo) (*AuthResult, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(req.Email) == "" {
		verr.Add("email", "fieldRequired")
	}
	if req.Password == "" {
		verr.Add("password", "fieldRequired")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive || !CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user, client)
}

func (s *AuthService) issue(ctx context.Context, user *models.User, client ClientInfo) (*AuthResult, error) {
	tokens, err := s.jwt.GenerateTokenPair(ctx, user, client)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Tokens: tokens, Identity: s.gate.IdentityFor(user)}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidToken
	}
	stored, err := s.jwt.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}

	return s.jwt.RefreshAccessToken(ctx, stored, user)
}

// SignOut revokes the refresh token of the session
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return ErrInvalidToken
	}
	return s.jwt.RevokeRefreshToken(ctx, refreshToken)
}

// Authenticate resolves a bearer access token to the current identity
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*Identity, error) {
	claims, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.Session(ctx, claims.UserID)
}

// Session returns the identity snapshot of an active account
func (s *AuthService) Session(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	return s.gate.IdentityFor(user), nil
}

// EnsureAdmin creates the admin account when missing and makes sure it
// carries the admin metadata flag
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if user.HasAdminFlag() {
			return nil
		}
		if user.Metadata == nil {
			user.Metadata = datatypes.JSONMap{}
		}
		user.Metadata[models.MetadataAdminFlag] = true
		return s.users.SaveMetadata(ctx, user)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters to create the admin account", minPasswordLength)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		Metadata:     datatypes.JSONMap{models.MetadataAdminFlag: true},
		IsActive:     true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	s.log.Info("admin account created", zap.String("email", email))
	return nil
}
