// Package store defines the persistence contracts shared by the SQLite and MongoDB backends.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/tasks-api-be/internal/models"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write would violate a uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	ErrTaskNotFound  = fmt.Errorf("%w: task", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("%w: username", ErrDuplicate)
)

// TaskStore persists tasks. Implementations assign identifiers on Create.
type TaskStore interface {
	List(ctx context.Context, q models.TaskQuery) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (models.Task, error)
	Create(ctx context.Context, task models.Task) (models.Task, error)
	// Update applies patch and returns the updated task.
	Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)
	Delete(ctx context.Context, id string) error
	// ReplaceAll removes every task and inserts tasks in their place.
	ReplaceAll(ctx context.Context, tasks []models.Task) ([]models.Task, error)
}

// UserStore persists user accounts.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// Create returns ErrUsernameTaken when the username already exists.
	Create(ctx context.Context, user models.User) (models.User, error)
}

// EventStore persists the activity log.
type EventStore interface {
	Create(ctx context.Context, event models.Event) (models.Event, error)
	Recent(ctx context.Context, limit int) ([]models.Event, error)
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
