package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/models"
)

const missingID = "658cda922f06d5e81e545e00"

func TestTaskServiceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.tasks.Create(ctx, models.Task{Name: "Write docs", Completed: false})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, "", created.Description)

	got, err := env.tasks.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := env.tasks.Update(ctx, created.ID, models.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", updated.Name)
	assert.True(t, updated.Completed)

	require.NoError(t, env.tasks.Delete(ctx, created.ID))

	_, err = env.tasks.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	events, err := env.events.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, EventTaskDeleted, events[0].Type)
	assert.Equal(t, EventTaskCreated, events[2].Type)
	require.NotNil(t, events[2].TaskID)
	assert.Equal(t, created.ID, *events[2].TaskID)
	assert.Equal(t, 3, env.published.count())
}

func TestTaskServiceNotFoundMessagesPerOperation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tasks.Get(ctx, missingID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = env.tasks.Update(ctx, missingID, models.TaskPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrTaskNotFoundForUpdate)

	err = env.tasks.Delete(ctx, missingID)
	assert.ErrorIs(t, err, ErrTaskNotFoundForDelete)

	assert.Zero(t, env.published.count(), "failed operations record nothing")
}

func TestTaskServiceUpdateRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.Update(context.Background(), missingID, models.TaskPatch{})
	assert.ErrorIs(t, err, ErrMissingUpdateFields)
}

func TestTaskServiceList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	empty, err := env.tasks.List(ctx, models.TaskQuery{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = env.tasks.Seed(ctx, []models.Task{
		{Name: "c", Completed: true},
		{Name: "a", Completed: false},
		{Name: "b", Completed: true},
	})
	require.NoError(t, err)

	all, err := env.tasks.List(ctx, models.TaskQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sorted, err := env.tasks.List(ctx, models.TaskQuery{
		Page: 1, Limit: 2, Completed: boolPtr(true),
		SortBy: models.SortByName, SortDirection: models.SortDesc,
	})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "c", sorted[0].Name)
	assert.Equal(t, "b", sorted[1].Name)

	beyond, err := env.tasks.List(ctx, models.TaskQuery{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestTaskServiceSeedReplaces(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tasks.Create(ctx, models.Task{Name: "old"})
	require.NoError(t, err)

	seeded, err := env.tasks.Seed(ctx, []models.Task{{Name: "new", Description: "fresh"}})
	require.NoError(t, err)
	require.Len(t, seeded, 1)

	all, err := env.tasks.List(ctx, models.TaskQuery{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Name)
}
