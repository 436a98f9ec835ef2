package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	List(ctx context.Context, q models.TaskQuery) ([]models.Task, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Create(ctx context.Context, task models.Task) (models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, tasks []models.Task) ([]models.Task, error)
}

// TaskService provides business logic for task management.
type TaskService struct {
	store  store.TaskStore
	events EventServiceProvider
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore, events EventServiceProvider) *TaskService {
	return &TaskService{store: tasks, events: events}
}

// List returns one page of tasks. The result is never nil.
func (s *TaskService) List(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	if q.Page < 1 {
		q.Page = models.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = models.DefaultLimit
	}
	if q.SortBy == "" || q.SortDirection == "" {
		q.SortBy, q.SortDirection = "", ""
	}
	if q.PastEnd() {
		return []models.Task{}, nil
	}

	tasks, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Get retrieves a single task by its ID.
func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return task, nil
}

// Create persists a new task. The store assigns its ID.
func (s *TaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	created, err := s.store.Create(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	s.record(ctx, EventTaskCreated, fmt.Sprintf("Task '%s' created", created.Name), created.ID)
	return created, nil
}

// Update applies patch to the task and returns the result.
func (s *TaskService) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	if patch.Empty() {
		return models.Task{}, ErrMissingUpdateFields
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Task{}, ErrTaskNotFoundForUpdate
		}
		return models.Task{}, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	s.record(ctx, EventTaskUpdated, fmt.Sprintf("Task '%s' updated", updated.Name), updated.ID)
	return updated, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFoundForDelete
		}
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	s.record(ctx, EventTaskDeleted, fmt.Sprintf("Task %s deleted", id), id)
	return nil
}

// Seed replaces every stored task with tasks.
func (s *TaskService) Seed(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	seeded, err := s.store.ReplaceAll(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to seed tasks: %w", err)
	}
	return seeded, nil
}

func (s *TaskService) record(ctx context.Context, eventType, message, taskID string) {
	if s.events == nil {
		return
	}
	s.events.Record(ctx, eventType, message, &taskID)
}
