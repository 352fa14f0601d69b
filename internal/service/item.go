package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/model"
)

// ItemStore is the persistence surface the item service depends on.
// *repository.ItemRepository satisfies it.
type ItemStore interface {
	Create(ctx context.Context, item *model.Item) error
	List(ctx context.Context) ([]model.Item, error)
}

// ItemService handles item business logic. Items carry no required fields
// and no ownership.
type ItemService struct {
	store ItemStore
}

// NewItemService creates a new ItemService.
func NewItemService(store ItemStore) *ItemService {
	return &ItemService{store: store}
}

// Create stores a new item.
func (s *ItemService) Create(ctx context.Context, req model.CreateItemRequest) (model.ItemResponse, error) {
	item := &model.Item{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.store.Create(ctx, item); err != nil {
		return model.ItemResponse{}, err
	}

	return item.ToResponse(), nil
}

// List returns all items.
func (s *ItemService) List(ctx context.Context) ([]model.ItemResponse, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ItemResponse, len(items))
	for i := range items {
		result[i] = items[i].ToResponse()
	}
	return result, nil
}
