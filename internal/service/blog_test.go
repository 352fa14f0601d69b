package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/repository"
)

// fakeBlogStore is an in-memory BlogStore. List returns newest first, like
// the SQL implementation.
type fakeBlogStore struct {
	mu    sync.Mutex
	blogs []model.Blog
	now   time.Time
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{now: time.Now()}
}

func (s *fakeBlogStore) Create(_ context.Context, blog *model.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now = s.now.Add(time.Second)
	blog.CreatedAt = s.now
	blog.UpdatedAt = s.now
	s.blogs = append(s.blogs, *blog)
	return nil
}

func (s *fakeBlogStore) List(_ context.Context) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Blog, len(s.blogs))
	for i, b := range s.blogs {
		out[len(s.blogs)-1-i] = b
	}
	return out, nil
}

func (s *fakeBlogStore) GetByID(_ context.Context, id string) (*model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.blogs {
		if b.ID == id {
			blog := b
			return &blog, nil
		}
	}
	return nil, repository.ErrBlogNotFound
}

func TestBlogCreateRequiredFields(t *testing.T) {
	svc := NewBlogService(newFakeBlogStore())

	_, err := svc.Create(context.Background(), 1, model.CreateBlogRequest{Description: "body"})
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Create() error = %v, want %v", err, ErrTitleRequired)
	}

	_, err = svc.Create(context.Background(), 1, model.CreateBlogRequest{Title: "T"})
	if !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("Create() error = %v, want %v", err, ErrDescriptionRequired)
	}
}

func TestBlogCreateSetsAuthorFromCaller(t *testing.T) {
	store := newFakeBlogStore()
	svc := NewBlogService(store)

	resp, err := svc.Create(context.Background(), 7, model.CreateBlogRequest{
		Title:       "T",
		Tags:        []string{"go", "testing"},
		Description: "<p>D</p>",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("Create() returned empty blog ID")
	}

	stored, err := store.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if stored.AuthorID == nil || *stored.AuthorID != 7 {
		t.Errorf("stored AuthorID = %v, want 7", stored.AuthorID)
	}
}

func TestBlogListNewestFirst(t *testing.T) {
	store := newFakeBlogStore()
	svc := NewBlogService(store)

	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		resp, err := svc.Create(context.Background(), 1, model.CreateBlogRequest{
			Title: title, Description: "body",
		})
		if err != nil {
			t.Fatalf("Create(%q) unexpected error: %v", title, err)
		}
		ids = append(ids, resp.ID)
	}

	blogs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(blogs) != 3 {
		t.Fatalf("List() returned %d blogs, want 3", len(blogs))
	}
	if blogs[0].ID != ids[2] {
		t.Errorf("List()[0].ID = %q, want most recent %q", blogs[0].ID, ids[2])
	}
	if blogs[2].ID != ids[0] {
		t.Errorf("List()[2].ID = %q, want oldest %q", blogs[2].ID, ids[0])
	}
}

func TestBlogGetNotFound(t *testing.T) {
	svc := NewBlogService(newFakeBlogStore())

	_, err := svc.Get(context.Background(), "ffffffff-0000-0000-0000-000000000000")
	if !errors.Is(err, ErrBlogNotFound) {
		t.Errorf("Get() error = %v, want %v", err, ErrBlogNotFound)
	}
}

func TestBlogResponseTagsNeverNull(t *testing.T) {
	store := newFakeBlogStore()
	svc := NewBlogService(store)

	resp, err := svc.Create(context.Background(), 1, model.CreateBlogRequest{
		Title: "T", Description: "D",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if resp.Tags == nil {
		t.Error("Create() response Tags is nil, want empty slice")
	}
}
