package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/models"
)

// AdminService is the interface that wraps the administrative operations
type AdminService interface {
	// ListUsers returns a fixed-size page of users.
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	// CreateUser creates a user with an explicit role.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	// UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, userID int, req *models.UpdateUserRequest) (*models.User, error)
	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID int) error
	// ListBlogs returns a fixed-size page of blogs.
	ListBlogs(ctx context.Context, page int) (*models.BlogPage, error)
	// DeleteBlog removes any blog regardless of ownership.
	DeleteBlog(ctx context.Context, blogID int) error
}

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes. The caller is
// expected to gate the group behind authentication and an admin role
// check.
// Note: This assumes the router is already scoped to /api
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", h.ListUsers)
		r.Post("/users", h.CreateUser)
		r.Put("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)

		r.Get("/blogs", h.ListBlogs)
		r.Delete("/blogs/{id}", h.DeleteBlog)
	})
}

func parseUserID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, apperr.NotFound("user not found")
	}
	return id, nil
}

// ListUsers handles GET /admin/users
// @Summary List users
// @Description Get a fixed-size page of users, newest first
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} models.UserPage "Page of users"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.adminService.ListUsers(r.Context(), page)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// CreateUser handles POST /admin/users
// @Summary Create a user
// @Description Create a user with an explicit role. An empty role defaults to user.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User to create"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} map[string][]string "Validation errors or duplicate email/username"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security ApiKeyAuth
// @Router /admin/users [post]
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /admin/users/{id}
// @Summary Update a user
// @Description Partially update a user. Omitted fields keep prior values; a non-empty password is re-hashed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} map[string][]string "Validation errors or duplicate email/username"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "User not found"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), id, &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/{id}
// @Summary Delete a user
// @Description Delete a user by id
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "User not found"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), id); err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"msg": "user deleted"})
}

// ListBlogs handles GET /admin/blogs
// @Summary List blogs for moderation
// @Description Get a fixed-size page of blogs, newest first
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} models.BlogPage "Page of blogs"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security ApiKeyAuth
// @Router /admin/blogs [get]
func (h *AdminHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.adminService.ListBlogs(r.Context(), page)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// DeleteBlog handles DELETE /admin/blogs/{id}
// @Summary Delete any blog
// @Description Delete a blog by id regardless of ownership
// @Tags admin
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Blog not found"
// @Security ApiKeyAuth
// @Router /admin/blogs/{id} [delete]
func (h *AdminHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	if err := h.adminService.DeleteBlog(r.Context(), id); err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"msg": "blog deleted"})
}
