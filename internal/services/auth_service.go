// Package services implements the business logic for authentication,
// blog management and the admin surface.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/auth"
	"github.com/midnightblog/backend/internal/models"
)

// AuthUserRepository is the interface that wraps user data access needed
// for signup and signin
type AuthUserRepository interface {
	// Create inserts a new user and fills in the generated id.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail retrieves a user by email. Returns sql.ErrNoRows when
	// no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// authService implements signup and signin
type authService struct {
	userRepo       AuthUserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo AuthUserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// validateSignupFields collects all field violations so the caller sees
// every problem at once
func validateSignupFields(username, email, password string) []string {
	var fields []string
	if utf8.RuneCountInString(username) < minUsernameLength {
		fields = append(fields, fmt.Sprintf("username must be at least %d characters", minUsernameLength))
	}
	if !emailRegex.MatchString(email) {
		fields = append(fields, "invalid email format")
	}
	if len(password) < minPasswordLength {
		fields = append(fields, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return fields
}

// Signup creates a new user account with the default user role and
// returns a bearer token plus the public user fields
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if fields := validateSignupFields(username, email, req.Password); len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return nil, apperr.Conflict("email already registered")
	}

	usernameExists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameExists {
		return nil, apperr.Conflict("username already taken")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser, // Default role
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenGenerator.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("username", user.Username))

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Signin authenticates a user by email and password and returns a bearer
// token. Unknown email and wrong password yield the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *authService) Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	var fields []string
	if email == "" {
		fields = append(fields, "email is required")
	}
	if req.Password == "" {
		fields = append(fields, "password is required")
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Authentication("invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Authentication("invalid email or password")
	}

	token, err := s.tokenGenerator.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SigninResponse{Token: token, Username: user.Username}, nil
}
