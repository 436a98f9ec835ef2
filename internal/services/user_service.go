package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/tasks-api-be/internal/auth"
	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	store  store.UserStore
	events EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, events EventServiceProvider) *UserService {
	return &UserService{store: users, events: events}
}

// Register creates a new user, hashing their password.
func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	// Early exit only; the unique index decides under concurrent registration.
	_, err := s.store.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.store.Create(ctx, models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if s.events != nil {
		s.events.Record(ctx, EventUserRegistered, fmt.Sprintf("User '%s' registered", user.Username), nil)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate checks a user's credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}
