package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/inkwell/inkwell-api/internal/model"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository handles blog persistence operations.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create inserts a new blog post. The caller supplies the generated ID.
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	tags, err := json.Marshal(blog.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO blogs (id, title, tags, description, author_id) VALUES (?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Title, tags, blog.Description, blog.AuthorID,
	); err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM blogs WHERE id = ?`, blog.ID,
	).Scan(&blog.CreatedAt, &blog.UpdatedAt)
}

// blogSelect joins each blog against its author for the public projection.
const blogSelect = `
	SELECT b.id, b.title, b.tags, b.description, b.author_id, u.username, u.email,
	       b.created_at, b.updated_at
	FROM blogs b
	LEFT JOIN users u ON u.id = b.author_id`

// List retrieves all blog posts with authors resolved, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	rows, err := r.db.QueryContext(ctx, blogSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	return blogs, rows.Err()
}

// GetByID retrieves a single blog post with its author resolved.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	row := r.db.QueryRowContext(ctx, blogSelect+` WHERE b.id = ?`, id)

	blog, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return blog, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*model.Blog, error) {
	var (
		blog     model.Blog
		tags     []byte
		username sql.NullString
		email    sql.NullString
	)

	err := row.Scan(
		&blog.ID, &blog.Title, &tags, &blog.Description, &blog.AuthorID,
		&username, &email, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &blog.Tags); err != nil {
			return nil, err
		}
	}

	if blog.AuthorID != nil && username.Valid {
		blog.Author = &model.BlogAuthor{
			Username: username.String,
			Email:    email.String,
		}
	}

	return &blog, nil
}
