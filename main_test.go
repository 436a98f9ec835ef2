package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/config"
	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/services"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	st, err := openStores(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "tasks.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { st.close() })

	tasks := services.NewTaskService(st.tasks, nil)
	_, err = tasks.Create(ctx, models.Task{Name: "stale"})
	require.NoError(t, err)

	require.NoError(t, seed(ctx, tasks, filepath.Join("testdata", "seed.json")))

	all, err := tasks.List(ctx, models.TaskQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Buy groceries", all[0].Name)
	assert.True(t, all[1].Completed)
	assert.Equal(t, "", all[2].Description)

	assert.Error(t, seed(ctx, tasks, filepath.Join("testdata", "missing.json")))
}
