package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/models"
)

type brokenEventStore struct{}

func (brokenEventStore) Create(context.Context, models.Event) (models.Event, error) {
	return models.Event{}, errors.New("disk I/O error")
}

func (brokenEventStore) Recent(context.Context, int) ([]models.Event, error) {
	return nil, errors.New("disk I/O error")
}

func TestEventServiceRecordPublishes(t *testing.T) {
	env := newTestEnv(t)
	taskID := "658cda922f06d5e81e545e01"

	env.events.Record(context.Background(), EventTaskCreated, "Task 'a' created", &taskID)

	require.Equal(t, 1, env.published.count())
	assert.Contains(t, string(env.published.messages[0]), `"action":"task.create"`)
	assert.Contains(t, string(env.published.messages[0]), `"taskId":"`+taskID+`"`)
}

func TestEventServiceRecordFailureIsSwallowed(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewEventService(brokenEventStore{}, pub)

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), EventUserRegistered, "User 'x' registered", nil)
	})
	assert.Zero(t, pub.count())

	_, err := svc.Recent(context.Background(), 5)
	assert.Error(t, err)
}
