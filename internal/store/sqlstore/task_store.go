// Package sqlstore implements the store contracts on SQLite through database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// sortColumns whitelists the columns a listing may be ordered by.
var sortColumns = map[string]string{
	models.SortByName:        "name",
	models.SortByCompleted:   "completed",
	models.SortByDescription: "description",
}

// TaskStore is a store.TaskStore backed by SQLite.
type TaskStore struct {
	db *sql.DB
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new TaskStore. The caller owns db.
func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Ping checks the database connection.
func (s *TaskStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// List returns one page of tasks matching q.
func (s *TaskStore) List(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	query, args := buildListQuery(q)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// buildListQuery renders the SELECT for q. Only whitelisted columns reach ORDER BY.
func buildListQuery(q models.TaskQuery) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT id, name, description, completed FROM tasks")
	if q.Completed != nil {
		b.WriteString(" WHERE completed = ?")
		args = append(args, *q.Completed)
	}

	if col, ok := sortColumns[q.SortBy]; ok {
		dir := "ASC"
		if q.Descending() {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s, rowid ASC", col, dir)
	} else {
		b.WriteString(" ORDER BY rowid ASC")
	}

	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, q.Limit, q.Skip())
	return b.String(), args
}

// GetByID retrieves a single task by its ID.
func (s *TaskStore) GetByID(ctx context.Context, id string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, description, completed FROM tasks WHERE id = ?", id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, store.ErrTaskNotFound
	}
	return task, err
}

// Create inserts a task under a newly assigned ID.
func (s *TaskStore) Create(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = newID()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, name, description, completed) VALUES (?, ?, ?, ?)",
		task.ID, task.Name, task.Description, task.Completed)
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update writes only the fields present in patch.
func (s *TaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Task{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if n == 0 {
		return models.Task{}, store.ErrTaskNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a task.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// ReplaceAll swaps the whole collection for tasks inside one transaction.
func (s *TaskStore) ReplaceAll(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO tasks (id, name, description, completed) VALUES (?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	saved := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		task.ID = newID()
		if _, err := stmt.ExecContext(ctx, task.ID, task.Name, task.Description, task.Completed); err != nil {
			return nil, err
		}
		saved = append(saved, task)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

// scanTask is a helper function to scan a single row into a Task struct.
func scanTask(scanner interface{ Scan(...any) error }) (models.Task, error) {
	var task models.Task
	err := scanner.Scan(&task.ID, &task.Name, &task.Description, &task.Completed)
	return task, err
}
