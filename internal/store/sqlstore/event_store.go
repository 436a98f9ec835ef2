package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// EventStore is a store.EventStore backed by SQLite.
type EventStore struct {
	db *sql.DB
}

var _ store.EventStore = (*EventStore)(nil)

// NewEventStore creates a new EventStore.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// Create records an event, stamping its ID and creation time.
func (s *EventStore) Create(ctx context.Context, event models.Event) (models.Event, error) {
	event.ID = newID()
	event.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, type, level, message, task_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.TaskID, event.CreatedAt)
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Recent returns up to limit events, newest first.
func (s *EventStore) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, type, level, message, task_id, created_at FROM events ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		var taskID sql.NullString
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &taskID, &event.CreatedAt); err != nil {
			return nil, err
		}
		if taskID.Valid {
			event.TaskID = &taskID.String
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
