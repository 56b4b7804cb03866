package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/midnightblog/backend/internal/apperr"
	"github.com/midnightblog/backend/internal/models"
)

func TestAdminService_ListUsers(t *testing.T) {
	repo := &mockUserRepository{
		users: []models.User{{ID: 3, Username: "carol"}, {ID: 2, Username: "bob"}},
		total: 12,
	}
	svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

	page, err := svc.ListUsers(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.Pages) // ceil(12/5)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Users, 2)
}

func TestAdminService_ListBlogs(t *testing.T) {
	repo := &mockBlogRepository{
		blogs: []models.Blog{{ID: 7, Slug: "post-7"}},
		total: 6,
	}
	svc := NewAdminService(&mockUserRepository{}, repo, zap.NewNop())

	page, err := svc.ListBlogs(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page, "invalid page falls back to the first page")
	assert.Equal(t, 2, page.Pages) // ceil(6/5)
	assert.Equal(t, 6, page.Total)
}

func TestAdminService_CreateUser(t *testing.T) {
	tests := []struct {
		name         string
		req          *models.CreateUserRequest
		repo         *mockUserRepository
		expectedKind apperr.Kind
		expectedRole models.Role
	}{
		{
			name:         "creates admin with caller-specified role",
			req:          &models.CreateUserRequest{Username: "carol", Email: "carol@x.com", Password: "secret1", Role: models.RoleAdmin},
			repo:         &mockUserRepository{},
			expectedRole: models.RoleAdmin,
		},
		{
			name:         "role defaults to user",
			req:          &models.CreateUserRequest{Username: "carol", Email: "carol@x.com", Password: "secret1"},
			repo:         &mockUserRepository{},
			expectedRole: models.RoleUser,
		},
		{
			name:         "unknown role",
			req:          &models.CreateUserRequest{Username: "carol", Email: "carol@x.com", Password: "secret1", Role: "superuser"},
			repo:         &mockUserRepository{},
			expectedKind: apperr.KindValidation,
		},
		{
			name:         "email taken",
			req:          &models.CreateUserRequest{Username: "carol", Email: "carol@x.com", Password: "secret1", Role: models.RoleUser},
			repo:         &mockUserRepository{existsByEmailResult: true},
			expectedKind: apperr.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(tt.repo, &mockBlogRepository{}, zap.NewNop())

			user, err := svc.CreateUser(context.Background(), tt.req)

			if tt.expectedKind != 0 {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.expectedKind))
				assert.Nil(t, tt.repo.created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRole, user.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
		})
	}
}

func TestAdminService_UpdateUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:           3,
		Username:     "carol",
		Email:        "carol@x.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		repo := &mockUserRepository{user: stored}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		user, err := svc.UpdateUser(context.Background(), 3, &models.UpdateUserRequest{Role: models.RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
		assert.Equal(t, "carol@x.com", user.Email)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.Equal(t, string(hash), user.PasswordHash, "omitted password keeps the stored hash")
	})

	t.Run("non-empty password replaces the hash", func(t *testing.T) {
		repo := &mockUserRepository{user: stored}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		user, err := svc.UpdateUser(context.Background(), 3, &models.UpdateUserRequest{Password: "newsecret"})

		require.NoError(t, err)
		assert.NotEqual(t, string(hash), user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newsecret")))
	})

	t.Run("username collision", func(t *testing.T) {
		repo := &mockUserRepository{user: stored, existsByUsernameResult: true}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		_, err := svc.UpdateUser(context.Background(), 3, &models.UpdateUserRequest{Username: "taken"})

		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		_, err := svc.UpdateUser(context.Background(), 99, &models.UpdateUserRequest{})

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockUserRepository{}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		err := svc.DeleteUser(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, repo.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockUserRepository{deleteErr: sql.ErrNoRows}
		svc := NewAdminService(repo, &mockBlogRepository{}, zap.NewNop())

		err := svc.DeleteUser(context.Background(), 99)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestAdminService_DeleteBlog(t *testing.T) {
	t.Run("deletes without ownership check", func(t *testing.T) {
		repo := &mockBlogRepository{}
		svc := NewAdminService(&mockUserRepository{}, repo, zap.NewNop())

		err := svc.DeleteBlog(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, 10, repo.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockBlogRepository{deleteErr: sql.ErrNoRows}
		svc := NewAdminService(&mockUserRepository{}, repo, zap.NewNop())

		err := svc.DeleteBlog(context.Background(), 99)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}
