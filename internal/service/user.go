package service

import (
	"context"
	"errors"

	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/repository"
)

// UserService exposes user listing and lookup. Responses are always the
// public projection: the password hash has no representation in the output.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns all users as public projections.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(users))
	for i := range users {
		result[i] = users[i].ToResponse()
	}
	return result, nil
}

// Get returns a single user as a public projection.
func (s *UserService) Get(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}
