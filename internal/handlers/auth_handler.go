package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/models"
)

// AuthService is the interface that wraps the authentication business logic
type AuthService interface {
	// Signup creates a new user account with the default user role and
	// returns a bearer token plus the public user fields.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	// Signin authenticates a user by email and password and returns a
	// bearer token plus the username.
	Signin(ctx context.Context, req *models.SigninRequest) (*models.SigninResponse, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Register a new user with username, email and password. Returns a bearer token and the public user fields.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} map[string][]string "Validation errors or duplicate email/username"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	resp, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Signin handles POST /auth/signin
// @Summary Sign in
// @Description Authenticate with email and password. Returns a bearer token and the username.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "Signin request"
// @Success 200 {object} models.SigninResponse "Signin successful"
// @Failure 400 {object} map[string][]string "Missing fields"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	resp, err := h.authService.Signin(r.Context(), &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
