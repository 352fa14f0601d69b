package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrBlogNotFound        = errors.New("blog not found")
)

// BlogStore is the persistence surface the blog service depends on.
// *repository.BlogRepository satisfies it.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	List(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, id string) (*model.Blog, error)
}

// BlogService handles blog business logic.
type BlogService struct {
	store BlogStore
}

// NewBlogService creates a new BlogService.
func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store}
}

// Create stores a new blog post. The author is always the authenticated
// caller; the request carries no author field and none would be honored.
func (s *BlogService) Create(ctx context.Context, authorID int64, req model.CreateBlogRequest) (model.BlogResponse, error) {
	if req.Title == "" {
		return model.BlogResponse{}, ErrTitleRequired
	}
	if req.Description == "" {
		return model.BlogResponse{}, ErrDescriptionRequired
	}

	blog := &model.Blog{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Tags:        req.Tags,
		Description: req.Description,
		AuthorID:    &authorID,
	}

	if err := s.store.Create(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}

	created, err := s.store.GetByID(ctx, blog.ID)
	if err != nil {
		return model.BlogResponse{}, err
	}

	return created.ToResponse(), nil
}

// List returns all blog posts with authors resolved, newest first.
func (s *BlogService) List(ctx context.Context) ([]model.BlogResponse, error) {
	blogs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.BlogResponse, len(blogs))
	for i := range blogs {
		result[i] = blogs[i].ToResponse()
	}
	return result, nil
}

// Get returns a single blog post with its author resolved.
func (s *BlogService) Get(ctx context.Context, id string) (model.BlogResponse, error) {
	blog, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	return blog.ToResponse(), nil
}
