package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
	"github.com/isdelr/tasks-api-be/internal/websocket"
)

// Event types recorded by the services.
const (
	EventTaskCreated    = "task.create"
	EventTaskUpdated    = "task.update"
	EventTaskDeleted    = "task.delete"
	EventUserRegistered = "user.register"
)

// Publisher fans encoded messages out to live subscribers.
type Publisher interface {
	Publish(message []byte)
}

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	Record(ctx context.Context, eventType, message string, taskID *string)
	Recent(ctx context.Context, limit int) ([]models.Event, error)
}

// EventService records activity and pushes it to websocket subscribers.
type EventService struct {
	store     store.EventStore
	publisher Publisher
}

// NewEventService creates a new EventService. publisher may be nil.
func NewEventService(events store.EventStore, publisher Publisher) *EventService {
	return &EventService{store: events, publisher: publisher}
}

// Record stores an info-level event and publishes it. Failures are logged and swallowed so
// that activity tracking never fails the operation that triggered it.
func (s *EventService) Record(ctx context.Context, eventType, message string, taskID *string) {
	event, err := s.store.Create(ctx, models.Event{
		Type:    eventType,
		Level:   "info",
		Message: message,
		TaskID:  taskID,
	})
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record event")
		return
	}

	if s.publisher == nil {
		return
	}
	msg, err := websocket.Encode(event.Type, event)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to encode event message")
		return
	}
	s.publisher.Publish(msg)
}

// Recent returns the latest events, newest first.
func (s *EventService) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	events, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
