package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/database"
	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store/sqlstore"
)

type testEnv struct {
	tasks     *TaskService
	users     *UserService
	events    *EventService
	published *capturePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	pub := &capturePublisher{}
	events := NewEventService(sqlstore.NewEventStore(db), pub)
	return &testEnv{
		tasks:     NewTaskService(sqlstore.NewTaskStore(db), events),
		users:     NewUserService(sqlstore.NewUserStore(db), events),
		events:    events,
		published: pub,
	}
}

type capturePublisher struct {
	mu       sync.Mutex
	messages [][]byte
}

func (p *capturePublisher) Publish(message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

// racingUserStore simulates a concurrent registration winning between the
// existence check and the insert.
type racingUserStore struct{}

func (racingUserStore) GetByUsername(context.Context, string) (models.User, error) {
	return models.User{}, errUserNotFound
}

func (racingUserStore) Create(context.Context, models.User) (models.User, error) {
	return models.User{}, errUsernameTaken
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
