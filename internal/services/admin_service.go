package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/models"
)

// AdminUserRepository is the interface that wraps user data access needed
// for the admin surface
type AdminUserRepository interface {
	// Create inserts a new user and fills in the generated id.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by ID. Returns sql.ErrNoRows when no user matches.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// GetPage retrieves a page of users together with the total user count.
	GetPage(ctx context.Context, page, limit int) ([]models.User, int, error)
	// ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Update overwrites the stored user row.
	Update(ctx context.Context, user *models.User) error
	// Delete deletes a user by ID. Returns sql.ErrNoRows when no user matched.
	Delete(ctx context.Context, userID int) error
}

// AdminBlogRepository is the interface that wraps blog data access needed
// for the admin surface
type AdminBlogRepository interface {
	// GetPage retrieves a page of blogs together with the total blog count.
	GetPage(ctx context.Context, page, limit int) ([]models.Blog, int, error)
	// Delete deletes a blog by ID. Returns sql.ErrNoRows when no blog matched.
	Delete(ctx context.Context, blogID int) error
}

// adminPageSize is the fixed page size of all admin listings
const adminPageSize = 5

// adminService implements user and blog management for the admin role
type adminService struct {
	userRepo AdminUserRepository
	blogRepo AdminBlogRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, blogRepo AdminBlogRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// ListUsers returns a page of users with the fixed admin page size
func (s *adminService) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := s.userRepo.GetPage(ctx, page, adminPageSize)
	if err != nil {
		return nil, err
	}

	return &models.UserPage{
		Users: users,
		Page:  page,
		Pages: (total + adminPageSize - 1) / adminPageSize,
		Total: total,
	}, nil
}

// ListBlogs returns a page of blogs with the fixed admin page size
func (s *adminService) ListBlogs(ctx context.Context, page int) (*models.BlogPage, error) {
	if page < 1 {
		page = 1
	}

	blogs, total, err := s.blogRepo.GetPage(ctx, page, adminPageSize)
	if err != nil {
		return nil, err
	}

	return &models.BlogPage{
		Blogs: blogs,
		Page:  page,
		Pages: (total + adminPageSize - 1) / adminPageSize,
		Total: total,
	}, nil
}

// CreateUser creates a user with a caller-specified role, unlike
// self-signup which always assigns the user role
func (s *adminService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	fields := validateSignupFields(username, email, req.Password)
	if req.Role != "" && !req.Role.Valid() {
		fields = append(fields, "role must be user or admin")
	}
	if len(fields) > 0 {
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

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created by admin", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))

	return user, nil
}

// UpdateUser applies a partial update. Empty fields keep their prior
// values; a non-empty password is hashed and replaces the stored hash.
func (s *adminService) UpdateUser(ctx context.Context, userID int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(req.Username); username != "" && username != user.Username {
		taken, err := s.userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return nil, apperr.Conflict("username already taken")
		}
		user.Username = username
	}
	if email := strings.TrimSpace(strings.ToLower(req.Email)); email != "" && email != user.Email {
		if !emailRegex.MatchString(email) {
			return nil, apperr.Validation("invalid email format")
		}
		taken, err := s.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, apperr.Conflict("email already registered")
		}
		user.Email = email
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return nil, apperr.Validation("role must be user or admin")
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			return nil, apperr.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user by ID
func (s *adminService) DeleteUser(ctx context.Context, userID int) error {
	err := s.userRepo.Delete(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("user not found")
	}
	if err != nil {
		return err
	}

	s.logger.Info("user deleted by admin", zap.Int("user_id", userID))
	return nil
}

// DeleteBlog hard-deletes a blog with no ownership check; the admin
// override is implicit on this route
func (s *adminService) DeleteBlog(ctx context.Context, blogID int) error {
	err := s.blogRepo.Delete(ctx, blogID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("blog not found")
	}
	if err != nil {
		return err
	}

	s.logger.Info("blog deleted by admin", zap.Int("blog_id", blogID))
	return nil
}
