package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/midnightblog/backend/internal/models"
)

// blogRepository implements blog data access on MySQL
type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) *blogRepository {
	return &blogRepository{
		db: db,
	}
}

const blogColumns = `id, title, slug, content, excerpt, category, featured_image,
		author_name, author_avatar, author_bio, author_social,
		owner_id, read_time, created_at, updated_at, published_at`

// scanBlog scans a single blog row. The author's social links are stored
// as a JSON column; owner_id NULL marks a legacy owner-less record and
// maps to OwnerID 0.
func scanBlog(row interface{ Scan(...any) error }) (*models.Blog, error) {
	blog := &models.Blog{}
	var featuredImage, authorSocial sql.NullString
	var ownerID sql.NullInt64

	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Content,
		&blog.Excerpt,
		&blog.Category,
		&featuredImage,
		&blog.Author.Name,
		&blog.Author.Avatar,
		&blog.Author.Bio,
		&authorSocial,
		&ownerID,
		&blog.ReadTime,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&blog.PublishedAt,
	)
	if err != nil {
		return nil, err
	}

	if featuredImage.Valid {
		blog.FeaturedImage = featuredImage.String
	}
	if ownerID.Valid {
		blog.OwnerID = int(ownerID.Int64)
	}
	if authorSocial.Valid && authorSocial.String != "" {
		if err := json.Unmarshal([]byte(authorSocial.String), &blog.Author.Social); err != nil {
			return nil, fmt.Errorf("failed to decode author social links: %w", err)
		}
	}

	return blog, nil
}

// encodeSocial encodes the author's social links for storage
func encodeSocial(social models.SocialLinks) (string, error) {
	encoded, err := json.Marshal(social)
	if err != nil {
		return "", fmt.Errorf("failed to encode author social links: %w", err)
	}
	return string(encoded), nil
}

// nullableOwner maps OwnerID 0 back to a NULL owner reference
func nullableOwner(ownerID int) sql.NullInt64 {
	if ownerID == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(ownerID), Valid: true}
}

// nullableString maps "" to NULL
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Create inserts a new blog into the database
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	social, err := encodeSocial(blog.Author.Social)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = now
	}

	query := `
		INSERT INTO blogs (title, slug, content, excerpt, category, featured_image,
			author_name, author_avatar, author_bio, author_social,
			owner_id, read_time, created_at, updated_at, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Excerpt,
		blog.Category,
		nullableString(blog.FeaturedImage),
		blog.Author.Name,
		blog.Author.Avatar,
		blog.Author.Bio,
		social,
		nullableOwner(blog.OwnerID),
		blog.ReadTime,
		now,
		now,
		blog.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	blog.ID = int(id)
	blog.CreatedAt = now
	blog.UpdatedAt = now
	return nil
}

// GetByID retrieves a blog by ID
func (r *blogRepository) GetByID(ctx context.Context, blogID int) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = ?`

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, blogID))
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

// GetPage retrieves a page of blogs ordered by publish time descending,
// together with the total blog count
func (r *blogRepository) GetPage(ctx context.Context, page, limit int) ([]models.Blog, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	query := `SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY published_at DESC, id DESC
		LIMIT ? OFFSET ?`

	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate blogs: %w", err)
	}

	return blogs, total, nil
}

// ExistsBySlug checks if another blog already uses the given slug.
// excludeID is ignored when 0.
func (r *blogRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM blogs WHERE slug = ? AND id != ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

// Update overwrites the stored blog row
func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	social, err := encodeSocial(blog.Author.Social)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query := `
		UPDATE blogs
		SET title = ?, slug = ?, content = ?, excerpt = ?, category = ?, featured_image = ?,
			author_name = ?, author_avatar = ?, author_bio = ?, author_social = ?,
			owner_id = ?, read_time = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Excerpt,
		blog.Category,
		nullableString(blog.FeaturedImage),
		blog.Author.Name,
		blog.Author.Avatar,
		blog.Author.Bio,
		social,
		nullableOwner(blog.OwnerID),
		blog.ReadTime,
		now,
		blog.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	blog.UpdatedAt = now
	return nil
}

// Delete deletes a blog by ID. Returns sql.ErrNoRows if no blog matched.
func (r *blogRepository) Delete(ctx context.Context, blogID int) error {
	query := `DELETE FROM blogs WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, blogID)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
