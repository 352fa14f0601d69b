package service

import (
	"context"
	"errors"
	"time"

	"github.com/inkwell/inkwell-api/internal/crypto"
	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/repository"
)

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUserExists         = errors.New("user with that username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface the auth and user services depend on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AuthService handles signup, login and identity lookup.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account. Duplicate detection is left to the
// store's unique constraints so concurrent signups cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) error {
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns a bearer token with public user info.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// GetUser retrieves a user by ID as a public projection.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}
