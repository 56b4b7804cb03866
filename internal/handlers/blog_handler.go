package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/auth"
	"github.com/midnightblog/backend/internal/middlewares"
	"github.com/midnightblog/backend/internal/models"
)

// BlogService is the interface that wraps the blog business logic
type BlogService interface {
	// Create creates a blog post owned by the caller.
	Create(ctx context.Context, identity auth.Identity, req *models.CreateBlogRequest) (*models.Blog, error)
	// List returns a page of blogs in descending publish-time order.
	List(ctx context.Context, page, limit int) (*models.BlogPage, error)
	// GetByID returns a single blog.
	GetByID(ctx context.Context, blogID int) (*models.Blog, error)
	// Update applies a partial update under the ownership rule.
	Update(ctx context.Context, identity auth.Identity, blogID int, req *models.UpdateBlogRequest) (*models.Blog, error)
	// Delete removes a blog under the ownership rule.
	Delete(ctx context.Context, identity auth.Identity, blogID int) error
}

// BlogHandler handles blog-related HTTP requests
type BlogHandler struct {
	BaseHandler
	blogService BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		BaseHandler: BaseHandler{Logger: logger},
		blogService: blogService,
	}
}

// RegisterRoutes registers all blog handler routes. Reads are public;
// mutations sit behind the auth middleware.
// Note: This assumes the router is already scoped to /api
func (h *BlogHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// parseID extracts the numeric id path parameter. A non-numeric id can
// never match a record, so it maps to not-found.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, apperr.NotFound("blog not found")
	}
	return id, nil
}

// identityFromContext returns the authenticated identity. Routes behind
// the auth middleware always carry one; its absence is a server fault.
func (h *BlogHandler) identityFromContext(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middlewares.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, apperr.Authentication("authentication required"))
		return auth.Identity{}, false
	}
	return identity, true
}

// List handles GET /blogs
// @Summary List blogs
// @Description Get a page of blogs sorted by publish time descending. Invalid page/limit values fall back to defaults.
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Success 200 {object} models.BlogPage "Page of blogs"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /blogs [get]
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	// Invalid values parse to 0 and fall back to defaults in the service
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.blogService.List(r.Context(), page, limit)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// GetByID handles GET /blogs/{id}
// @Summary Get a blog
// @Description Get a single blog by id
// @Tags blogs
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} models.Blog "Blog"
// @Failure 404 {object} map[string]string "Blog not found"
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	blog, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, blog)
}

// Create handles POST /blogs
// @Summary Create a blog
// @Description Create a blog post owned by the authenticated caller. The slug is derived from the title.
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body models.CreateBlogRequest true "Blog to create"
// @Success 201 {object} models.Blog "Created blog"
// @Failure 400 {object} map[string][]string "Validation errors or slug collision"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security ApiKeyAuth
// @Router /blogs [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityFromContext(w, r)
	if !ok {
		return
	}

	var req models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	blog, err := h.blogService.Create(r.Context(), identity, &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, blog)
}

// Update handles PUT /blogs/{id}
// @Summary Update a blog
// @Description Partially update a blog. Only the owner or an admin may update; omitted fields keep prior values.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog id"
// @Param request body models.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} models.Blog "Updated blog"
// @Failure 400 {object} map[string][]string "Validation errors or slug collision"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Blog not found"
// @Security ApiKeyAuth
// @Router /blogs/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityFromContext(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	var req models.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, apperr.Validation("invalid request body"))
		return
	}

	blog, err := h.blogService.Update(r.Context(), identity, id, &req)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, blog)
}

// Delete handles DELETE /blogs/{id}
// @Summary Delete a blog
// @Description Delete a blog. Only the owner or an admin may delete.
// @Tags blogs
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Blog not found"
// @Security ApiKeyAuth
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityFromContext(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.RespondError(w, err)
		return
	}

	if err := h.blogService.Delete(r.Context(), identity, id); err != nil {
		h.RespondError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"msg": "blog deleted"})
}
