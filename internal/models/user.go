package models

import "time"

// Role identifies the permission level of a user
type Role string

// User roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignupRequest represents a self-registration request
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents a login request
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup: a bearer token plus the public
// user fields
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SigninResponse is returned by signin
type SigninResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// CreateUserRequest is the admin user-creation payload. Unlike signup,
// the role is caller-specified.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserRequest is the admin user-update payload. Empty fields keep
// their prior values; a non-empty password replaces the stored hash.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserPage is a page of users with pagination metadata
type UserPage struct {
	Users []User `json:"users"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Total int    `json:"total"`
}
