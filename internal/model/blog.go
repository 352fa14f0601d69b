package model

import "time"

// Blog represents a blog post in the database. Author is populated from a
// join against users and is nil when the post has no author on record.
type Blog struct {
	ID          string
	Title       string
	Tags        []string
	Description string
	AuthorID    *int64
	Author      *BlogAuthor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogAuthor is the public-safe projection of a blog's author.
type BlogAuthor struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateBlogRequest represents a blog creation request. The author is never
// part of the request: it is derived from the authenticated caller.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// BlogResponse represents a blog post in API responses.
type BlogResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Tags        []string    `json:"tags"`
	Description string      `json:"description"`
	Author      *BlogAuthor `json:"author,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ToResponse converts a Blog to its API projection.
func (b *Blog) ToResponse() BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Tags:        tags,
		Description: b.Description,
		Author:      b.Author,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
