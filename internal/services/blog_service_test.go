package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/auth"
	"github.com/midnightblog/backend/internal/models"
)

// mockBlogRepository is a mock implementation of the blog repository
// interfaces used by the blog and admin services
type mockBlogRepository struct {
	blog       *models.Blog
	getErr     error
	createErr  error
	created    *models.Blog
	blogs      []models.Blog
	total      int
	pageErr    error
	slugExists bool
	slugErr    error
	updated    *models.Blog
	updateErr  error
	deleteErr  error
	deletedID  int
}

func (m *mockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if m.createErr != nil {
		return m.createErr
	}
	blog.ID = 10
	blog.PublishedAt = time.Now().UTC()
	m.created = blog
	return nil
}

func (m *mockBlogRepository) GetByID(ctx context.Context, blogID int) (*models.Blog, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.blog == nil {
		return nil, sql.ErrNoRows
	}
	// Returning a copy mimics a fresh database read; mutations only
	// stick once Update is called
	copied := *m.blog
	return &copied, nil
}

func (m *mockBlogRepository) GetPage(ctx context.Context, page, limit int) ([]models.Blog, int, error) {
	if m.pageErr != nil {
		return nil, 0, m.pageErr
	}
	return m.blogs, m.total, nil
}

func (m *mockBlogRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	if m.slugErr != nil {
		return false, m.slugErr
	}
	return m.slugExists, nil
}

func (m *mockBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = blog
	return nil
}

func (m *mockBlogRepository) Delete(ctx context.Context, blogID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = blogID
	return nil
}

var (
	aliceIdentity = auth.Identity{ID: 1, Role: models.RoleUser}
	bobIdentity   = auth.Identity{ID: 2, Role: models.RoleUser}
	adminIdentity = auth.Identity{ID: 9, Role: models.RoleAdmin}
)

func validCreateRequest() *models.CreateBlogRequest {
	return &models.CreateBlogRequest{
		Title:    "My First Post",
		Content:  "<p>hi</p>",
		Category: models.CategoryTechnology,
		Excerpt:  "hi",
	}
}

func TestBlogService_Create(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name         string
		req          *models.CreateBlogRequest
		repo         *mockBlogRepository
		expectedKind apperr.Kind
	}{
		{
			name: "success",
			req:  validCreateRequest(),
			repo: &mockBlogRepository{},
		},
		{
			name: "missing title",
			req: &models.CreateBlogRequest{
				Content:  "<p>hi</p>",
				Category: models.CategoryTechnology,
			},
			repo:         &mockBlogRepository{},
			expectedKind: apperr.KindValidation,
		},
		{
			name: "missing content",
			req: &models.CreateBlogRequest{
				Title:    "My First Post",
				Category: models.CategoryTechnology,
			},
			repo:         &mockBlogRepository{},
			expectedKind: apperr.KindValidation,
		},
		{
			name: "missing category",
			req: &models.CreateBlogRequest{
				Title:   "My First Post",
				Content: "<p>hi</p>",
			},
			repo:         &mockBlogRepository{},
			expectedKind: apperr.KindValidation,
		},
		{
			name: "unknown category",
			req: &models.CreateBlogRequest{
				Title:    "My First Post",
				Content:  "<p>hi</p>",
				Category: "Gardening",
			},
			repo:         &mockBlogRepository{},
			expectedKind: apperr.KindValidation,
		},
		{
			name: "slug collision",
			req:  validCreateRequest(),
			repo: &mockBlogRepository{slugExists: true},
			expectedKind: apperr.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewBlogService(tt.repo, logger)

			blog, err := svc.Create(context.Background(), aliceIdentity, tt.req)

			if tt.expectedKind != 0 {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.expectedKind))
				assert.Nil(t, tt.repo.created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "my-first-post", blog.Slug)
			assert.Equal(t, "5 min read", blog.ReadTime)
			assert.Equal(t, aliceIdentity.ID, blog.OwnerID)
		})
	}
}

func TestBlogService_Create_OwnerIsCallerNotByline(t *testing.T) {
	repo := &mockBlogRepository{}
	svc := NewBlogService(repo, zap.NewNop())

	req := validCreateRequest()
	req.Author = &models.Author{Name: "Someone Else"}

	blog, err := svc.Create(context.Background(), aliceIdentity, req)

	require.NoError(t, err)
	assert.Equal(t, aliceIdentity.ID, blog.OwnerID)
	assert.Equal(t, "Someone Else", blog.Author.Name)
}

func TestBlogService_Create_SanitizesContent(t *testing.T) {
	repo := &mockBlogRepository{}
	svc := NewBlogService(repo, zap.NewNop())

	req := validCreateRequest()
	req.Content = `<p>hi</p><script>alert("xss")</script>`

	blog, err := svc.Create(context.Background(), aliceIdentity, req)

	require.NoError(t, err)
	assert.NotContains(t, blog.Content, "<script>")
	assert.Contains(t, blog.Content, "<p>hi</p>")
}

func TestBlogService_List(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		page          int
		limit         int
		total         int
		expectedPage  int
		expectedPages int
	}{
		{
			name:          "12 records page 2 limit 5",
			page:          2,
			limit:         5,
			total:         12,
			expectedPage:  2,
			expectedPages: 3,
		},
		{
			name:          "invalid page falls back to default",
			page:          -3,
			limit:         10,
			total:         12,
			expectedPage:  1,
			expectedPages: 2,
		},
		{
			name:          "invalid limit falls back to default",
			page:          1,
			limit:         0,
			total:         12,
			expectedPage:  1,
			expectedPages: 2,
		},
		{
			name:          "empty collection",
			page:          1,
			limit:         10,
			total:         0,
			expectedPage:  1,
			expectedPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBlogRepository{total: tt.total}
			svc := NewBlogService(repo, logger)

			result, err := svc.List(context.Background(), tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPage, result.Page)
			assert.Equal(t, tt.expectedPages, result.Pages)
			assert.Equal(t, tt.total, result.Total)
		})
	}
}

func TestBlogService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockBlogRepository{blog: &models.Blog{ID: 10, Slug: "my-first-post"}}
		svc := NewBlogService(repo, zap.NewNop())

		blog, err := svc.GetByID(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, "my-first-post", blog.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockBlogRepository{}
		svc := NewBlogService(repo, zap.NewNop())

		_, err := svc.GetByID(context.Background(), 99)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func ownedBlog() *models.Blog {
	return &models.Blog{
		ID:       10,
		Title:    "My First Post",
		Slug:     "my-first-post",
		Content:  "<p>hi</p>",
		Excerpt:  "hi",
		Category: models.CategoryTechnology,
		OwnerID:  aliceIdentity.ID,
		ReadTime: "5 min read",
	}
}

func TestBlogService_Update_Authorization(t *testing.T) {
	tests := []struct {
		name         string
		blog         *models.Blog
		identity     auth.Identity
		expectedKind apperr.Kind
	}{
		{
			name:     "owner may update",
			blog:     ownedBlog(),
			identity: aliceIdentity,
		},
		{
			name:     "admin may update",
			blog:     ownedBlog(),
			identity: adminIdentity,
		},
		{
			name:         "other user is forbidden",
			blog:         ownedBlog(),
			identity:     bobIdentity,
			expectedKind: apperr.KindAuthorization,
		},
		{
			name:         "owner-less record forbids non-admin",
			blog:         &models.Blog{ID: 11, Title: "Old Post", OwnerID: 0, Category: models.CategoryUncategorized},
			identity:     aliceIdentity,
			expectedKind: apperr.KindAuthorization,
		},
		{
			name:     "owner-less record allows admin",
			blog:     &models.Blog{ID: 11, Title: "Old Post", OwnerID: 0, Category: models.CategoryUncategorized},
			identity: adminIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBlogRepository{blog: tt.blog}
			svc := NewBlogService(repo, zap.NewNop())

			_, err := svc.Update(context.Background(), tt.identity, tt.blog.ID, &models.UpdateBlogRequest{Excerpt: "changed"})

			if tt.expectedKind != 0 {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.expectedKind))
				assert.Nil(t, repo.updated, "record must be unchanged")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, repo.updated)
		})
	}
}

func TestBlogService_Update_BackfillsOwnerForAdmin(t *testing.T) {
	repo := &mockBlogRepository{blog: &models.Blog{ID: 11, Title: "Old Post", OwnerID: 0, Category: models.CategoryUncategorized}}
	svc := NewBlogService(repo, zap.NewNop())

	updated, err := svc.Update(context.Background(), adminIdentity, 11, &models.UpdateBlogRequest{Excerpt: "claimed"})

	require.NoError(t, err)
	assert.Equal(t, adminIdentity.ID, updated.OwnerID)
	assert.Equal(t, adminIdentity.ID, repo.updated.OwnerID)
}

func TestBlogService_Update_Partial(t *testing.T) {
	repo := &mockBlogRepository{blog: ownedBlog()}
	svc := NewBlogService(repo, zap.NewNop())

	updated, err := svc.Update(context.Background(), aliceIdentity, 10, &models.UpdateBlogRequest{
		Category: models.CategoryDesign,
	})

	require.NoError(t, err)
	// Omitted fields keep their prior values
	assert.Equal(t, "My First Post", updated.Title)
	assert.Equal(t, "my-first-post", updated.Slug)
	assert.Equal(t, "<p>hi</p>", updated.Content)
	assert.Equal(t, models.CategoryDesign, updated.Category)
}

func TestBlogService_Update_TitleChangeRegeneratesSlug(t *testing.T) {
	t.Run("new slug", func(t *testing.T) {
		repo := &mockBlogRepository{blog: ownedBlog()}
		svc := NewBlogService(repo, zap.NewNop())

		updated, err := svc.Update(context.Background(), aliceIdentity, 10, &models.UpdateBlogRequest{
			Title: "A Better Title!",
		})

		require.NoError(t, err)
		assert.Equal(t, "a-better-title", updated.Slug)
	})

	t.Run("slug collision", func(t *testing.T) {
		repo := &mockBlogRepository{blog: ownedBlog(), slugExists: true}
		svc := NewBlogService(repo, zap.NewNop())

		_, err := svc.Update(context.Background(), aliceIdentity, 10, &models.UpdateBlogRequest{
			Title: "A Better Title!",
		})

		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		assert.Nil(t, repo.updated)
	})

	t.Run("unchanged title keeps slug", func(t *testing.T) {
		repo := &mockBlogRepository{blog: ownedBlog()}
		svc := NewBlogService(repo, zap.NewNop())

		updated, err := svc.Update(context.Background(), aliceIdentity, 10, &models.UpdateBlogRequest{
			Title: "My First Post",
		})

		require.NoError(t, err)
		assert.Equal(t, "my-first-post", updated.Slug)
	})
}

func TestBlogService_Update_NotFound(t *testing.T) {
	repo := &mockBlogRepository{}
	svc := NewBlogService(repo, zap.NewNop())

	_, err := svc.Update(context.Background(), aliceIdentity, 99, &models.UpdateBlogRequest{})

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestBlogService_Delete(t *testing.T) {
	tests := []struct {
		name         string
		blog         *models.Blog
		identity     auth.Identity
		expectedKind apperr.Kind
	}{
		{
			name:     "owner may delete",
			blog:     ownedBlog(),
			identity: aliceIdentity,
		},
		{
			name:     "admin may delete",
			blog:     ownedBlog(),
			identity: adminIdentity,
		},
		{
			name:         "other user is forbidden",
			blog:         ownedBlog(),
			identity:     bobIdentity,
			expectedKind: apperr.KindAuthorization,
		},
		{
			name:         "owner-less record forbids non-admin",
			blog:         &models.Blog{ID: 11, OwnerID: 0},
			identity:     aliceIdentity,
			expectedKind: apperr.KindAuthorization,
		},
		{
			name:     "owner-less record allows admin",
			blog:     &models.Blog{ID: 11, OwnerID: 0},
			identity: adminIdentity,
		},
		{
			name:         "not found",
			blog:         nil,
			identity:     aliceIdentity,
			expectedKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBlogRepository{blog: tt.blog}
			svc := NewBlogService(repo, zap.NewNop())

			blogID := 10
			if tt.blog != nil {
				blogID = tt.blog.ID
			}
			err := svc.Delete(context.Background(), tt.identity, blogID)

			if tt.expectedKind != 0 {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.expectedKind))
				assert.Zero(t, repo.deletedID, "record must be unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, blogID, repo.deletedID)
		})
	}
}
