package models

import "time"

// Category is the blog post category enum
type Category string

// Blog categories
const (
	CategoryDevelopment   Category = "Development"
	CategoryDesign        Category = "Design"
	CategoryTechnology    Category = "Technology"
	CategoryAI            Category = "Artificial Intelligence"
	CategoryWebDev        Category = "Web Development"
	CategoryML            Category = "Machine Learning"
	CategoryUncategorized Category = "Uncategorized"
)

// Valid reports whether the category is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryDevelopment, CategoryDesign, CategoryTechnology,
		CategoryAI, CategoryWebDev, CategoryML, CategoryUncategorized:
		return true
	}
	return false
}

// SocialLinks holds the author's social profile URLs
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

// Author is the denormalized display byline embedded in a blog post.
// It is independent of the owning user: the byline may name anyone,
// while OwnerID alone controls mutation rights.
type Author struct {
	Name   string      `json:"name"`
	Avatar string      `json:"avatar,omitempty"`
	Bio    string      `json:"bio,omitempty"`
	Social SocialLinks `json:"social"`
}

// Blog represents a blog post. OwnerID is 0 for legacy records that were
// created without an owning user; such records are admin-managed only.
type Blog struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Category      Category  `json:"category"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Author        Author    `json:"author"`
	OwnerID       int       `json:"ownerId,omitempty"`
	ReadTime      string    `json:"readTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	PublishedAt   time.Time `json:"publishedAt"`
}

// CreateBlogRequest is the blog creation payload
type CreateBlogRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
	Excerpt  string   `json:"excerpt"`
	Author   *Author  `json:"author"`
	ReadTime string   `json:"readTime"`
}

// UpdateBlogRequest is the blog update payload. Empty fields keep their
// prior values.
type UpdateBlogRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
	Excerpt  string   `json:"excerpt"`
	Author   *Author  `json:"author"`
	ReadTime string   `json:"readTime"`
}

// BlogPage is a page of blogs with pagination metadata
type BlogPage struct {
	Blogs []Blog `json:"blogs"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
	Total int    `json:"total"`
}
