package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/auth"
	"github.com/midnightblog/backend/internal/models"
	"github.com/midnightblog/backend/internal/util"
)

// BlogRepository is the interface that wraps blog data access
type BlogRepository interface {
	// Create inserts a new blog and fills in the generated id and timestamps.
	Create(ctx context.Context, blog *models.Blog) error
	// GetByID retrieves a blog by ID. Returns sql.ErrNoRows when no blog matches.
	GetByID(ctx context.Context, blogID int) (*models.Blog, error)
	// GetPage retrieves a page of blogs ordered by publish time descending,
	// together with the total blog count.
	GetPage(ctx context.Context, page, limit int) ([]models.Blog, int, error)
	// ExistsBySlug checks if another blog already uses the given slug,
	// ignoring the record with excludeID.
	ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error)
	// Update overwrites the stored blog row.
	Update(ctx context.Context, blog *models.Blog) error
	// Delete deletes a blog by ID. Returns sql.ErrNoRows when no blog matched.
	Delete(ctx context.Context, blogID int) error
}

const (
	maxTitleLength   = 150
	maxExcerptLength = 300
	defaultReadTime  = "5 min read"
	defaultPageSize  = 10
)

// blogService implements the blog CRUD operations with ownership checks
type blogService struct {
	blogRepo  BlogRepository
	sanitizer *bluemonday.Policy
	logger    *zap.Logger
}

// NewBlogService creates a new blog service. Blog content is user-supplied
// HTML and passes through a UGC sanitization policy before persistence.
func NewBlogService(blogRepo BlogRepository, logger *zap.Logger) *blogService {
	return &blogService{
		blogRepo:  blogRepo,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// Create creates a blog post owned by the caller. The slug is derived
// from the title; the embedded author byline is display metadata and is
// stored as given, independent of the owning user.
func (s *blogService) Create(ctx context.Context, identity auth.Identity, req *models.CreateBlogRequest) (*models.Blog, error) {
	var fields []string
	if req.Title == "" {
		fields = append(fields, "title is required")
	} else if utf8.RuneCountInString(req.Title) > maxTitleLength {
		fields = append(fields, fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	if req.Content == "" {
		fields = append(fields, "content is required")
	}
	if req.Category == "" {
		fields = append(fields, "category is required")
	} else if !req.Category.Valid() {
		fields = append(fields, "category must be one of the known categories")
	}
	if utf8.RuneCountInString(req.Excerpt) > maxExcerptLength {
		fields = append(fields, fmt.Sprintf("excerpt must be at most %d characters", maxExcerptLength))
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	slug := util.Slugify(req.Title)
	if slug == "" {
		return nil, apperr.Validation("title must contain at least one alphanumeric character")
	}

	taken, err := s.blogRepo.ExistsBySlug(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("a blog with this slug already exists")
	}

	blog := &models.Blog{
		Title:         req.Title,
		Slug:          slug,
		Content:       s.sanitizer.Sanitize(req.Content),
		Excerpt:       s.sanitizer.Sanitize(req.Excerpt),
		Category:      req.Category,
		FeaturedImage: req.Image,
		OwnerID:       identity.ID,
		ReadTime:      req.ReadTime,
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if blog.ReadTime == "" {
		blog.ReadTime = defaultReadTime
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	s.logger.Info("blog created",
		zap.Int("blog_id", blog.ID),
		zap.String("slug", blog.Slug),
		zap.Int("owner_id", blog.OwnerID),
	)

	return blog, nil
}

// List returns a page of blogs in descending publish-time order.
// Non-positive page/limit values fall back to the defaults instead of
// erroring.
func (s *blogService) List(ctx context.Context, page, limit int) (*models.BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	blogs, total, err := s.blogRepo.GetPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.BlogPage{
		Blogs: blogs,
		Page:  page,
		Pages: (total + limit - 1) / limit,
		Total: total,
	}, nil
}

// GetByID returns a single blog
func (s *blogService) GetByID(ctx context.Context, blogID int) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("blog not found")
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// authorizeMutation enforces the ownership rule shared by update and
// delete: the owner or an admin may mutate; a legacy record with no
// owner is admin-only.
func authorizeMutation(blog *models.Blog, identity auth.Identity) error {
	if identity.Role == models.RoleAdmin {
		return nil
	}
	if blog.OwnerID == 0 || blog.OwnerID != identity.ID {
		return apperr.Authorization("not allowed to modify this blog")
	}
	return nil
}

// Update applies a partial update. An admin updating a legacy owner-less
// record backfills the owner reference with their own id. A title change
// regenerates the slug with the same derivation rule.
func (s *blogService) Update(ctx context.Context, identity auth.Identity, blogID int, req *models.UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if err := authorizeMutation(blog, identity); err != nil {
		return nil, err
	}
	if blog.OwnerID == 0 {
		// Only admins reach this point for owner-less records
		blog.OwnerID = identity.ID
	}

	var fields []string
	if req.Title != "" && req.Title != blog.Title {
		if utf8.RuneCountInString(req.Title) > maxTitleLength {
			fields = append(fields, fmt.Sprintf("title must be at most %d characters", maxTitleLength))
		} else {
			slug := util.Slugify(req.Title)
			if slug == "" {
				fields = append(fields, "title must contain at least one alphanumeric character")
			} else {
				taken, err := s.blogRepo.ExistsBySlug(ctx, slug, blog.ID)
				if err != nil {
					return nil, err
				}
				if taken {
					return nil, apperr.Conflict("a blog with this slug already exists")
				}
				blog.Title = req.Title
				blog.Slug = slug
			}
		}
	}
	if req.Category != "" {
		if !req.Category.Valid() {
			fields = append(fields, "category must be one of the known categories")
		} else {
			blog.Category = req.Category
		}
	}
	if utf8.RuneCountInString(req.Excerpt) > maxExcerptLength {
		fields = append(fields, fmt.Sprintf("excerpt must be at most %d characters", maxExcerptLength))
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	if req.Content != "" {
		blog.Content = s.sanitizer.Sanitize(req.Content)
	}
	if req.Excerpt != "" {
		blog.Excerpt = s.sanitizer.Sanitize(req.Excerpt)
	}
	if req.Image != "" {
		blog.FeaturedImage = req.Image
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.ReadTime != "" {
		blog.ReadTime = req.ReadTime
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Delete removes a blog. The same legacy-tolerant ownership rule as
// update applies: owner or admin, with owner-less records admin-only.
func (s *blogService) Delete(ctx context.Context, identity auth.Identity, blogID int) error {
	blog, err := s.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if err := authorizeMutation(blog, identity); err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("blog not found")
		}
		return err
	}

	s.logger.Info("blog deleted", zap.Int("blog_id", blogID), zap.Int("deleted_by", identity.ID))
	return nil
}
