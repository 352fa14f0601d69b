package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/inkwell/inkwell-api/internal/model"
)

type fakeItemStore struct {
	mu    sync.Mutex
	items []model.Item
}

func (s *fakeItemStore) Create(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.items = append(s.items, *item)
	return nil
}

func (s *fakeItemStore) List(_ context.Context) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Item(nil), s.items...), nil
}

func TestItemCreateAndList(t *testing.T) {
	svc := NewItemService(&fakeItemStore{})

	created, err := svc.Create(context.Background(), model.CreateItemRequest{
		Name: "widget", Description: "a widget",
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() returned empty item ID")
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("List() returned %d items, want 1", len(items))
	}
	if items[0].Name != "widget" {
		t.Errorf("List()[0].Name = %q, want %q", items[0].Name, "widget")
	}
}

func TestItemCreateOptionalFields(t *testing.T) {
	svc := NewItemService(&fakeItemStore{})

	// Name and description are both optional.
	created, err := svc.Create(context.Background(), model.CreateItemRequest{})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() returned empty item ID")
	}
}

func TestItemCreateUniqueIDs(t *testing.T) {
	svc := NewItemService(&fakeItemStore{})

	a, err := svc.Create(context.Background(), model.CreateItemRequest{Name: "a"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	b, err := svc.Create(context.Background(), model.CreateItemRequest{Name: "b"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if a.ID == b.ID {
		t.Error("Create() produced duplicate item IDs")
	}
}
