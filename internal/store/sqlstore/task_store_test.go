package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

func seedTasks(t *testing.T, s *TaskStore) []models.Task {
	t.Helper()
	saved, err := s.ReplaceAll(context.Background(), []models.Task{
		{Name: "Comprar pan", Description: "integral", Completed: true},
		{Name: "Terminar proyecto", Description: "api", Completed: true},
		{Name: "Lavar ropa", Description: "blanca", Completed: false},
		{Name: "Estudiar", Description: "go", Completed: true},
		{Name: "Llamar a mamá", Description: "", Completed: false},
		{Name: "Pagar luz", Description: "factura", Completed: true},
	})
	require.NoError(t, err)
	return saved
}

func names(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Name
	}
	return out
}

func TestTaskStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore(newTestDB(t))

	created, err := s.Create(ctx, models.Task{Name: "write tests", Description: "store"})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := s.Update(ctx, created.ID, models.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, models.Task{ID: created.ID, Name: "write tests", Description: "store", Completed: true}, updated)

	updated, err = s.Update(ctx, created.ID, models.TaskPatch{Name: strPtr("renamed"), Description: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "", updated.Description)
	assert.True(t, updated.Completed)

	require.NoError(t, s.Delete(ctx, created.ID))

	_, err = s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created.ID), store.ErrTaskNotFound)
	_, err = s.Update(ctx, created.ID, models.TaskPatch{Completed: boolPtr(false)})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStoreCreateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore(newTestDB(t))

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		task, err := s.Create(ctx, models.Task{Name: "task"})
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %s reused", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore(newTestDB(t))
	seedTasks(t, s)

	tests := []struct {
		name  string
		query models.TaskQuery
		want  []string
	}{
		{
			name:  "default order first page",
			query: models.TaskQuery{Page: 1, Limit: 10},
			want:  []string{"Comprar pan", "Terminar proyecto", "Lavar ropa", "Estudiar", "Llamar a mamá", "Pagar luz"},
		},
		{
			name:  "second page of two",
			query: models.TaskQuery{Page: 2, Limit: 2},
			want:  []string{"Lavar ropa", "Estudiar"},
		},
		{
			name:  "completed sorted by name desc limited",
			query: models.TaskQuery{Page: 1, Limit: 3, Completed: boolPtr(true), SortBy: "name", SortDirection: "desc"},
			want:  []string{"Terminar proyecto", "Pagar luz", "Estudiar"},
		},
		{
			name:  "pending sorted by name asc",
			query: models.TaskQuery{Page: 1, Limit: 10, Completed: boolPtr(false), SortBy: "name", SortDirection: "asc"},
			want:  []string{"Lavar ropa", "Llamar a mamá"},
		},
		{
			name:  "sort by completed keeps insertion order within ties",
			query: models.TaskQuery{Page: 1, Limit: 3, SortBy: "completed", SortDirection: "asc"},
			want:  []string{"Lavar ropa", "Llamar a mamá", "Comprar pan"},
		},
		{
			name:  "page past the end",
			query: models.TaskQuery{Page: 5, Limit: 10},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := s.List(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, tasks)
			assert.LessOrEqual(t, len(tasks), tt.query.Limit)
			assert.Equal(t, tt.want, names(tasks))
		})
	}
}

func TestBuildListQueryIgnoresUnknownSortColumn(t *testing.T) {
	query, args := buildListQuery(models.TaskQuery{Page: 2, Limit: 5, SortBy: "name; DROP TABLE tasks", SortDirection: "asc"})
	assert.NotContains(t, query, "DROP")
	assert.Contains(t, query, "ORDER BY rowid ASC")
	assert.Equal(t, []any{5, 5}, args)
}

func TestTaskStoreReplaceAll(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore(newTestDB(t))
	seedTasks(t, s)

	saved, err := s.ReplaceAll(ctx, []models.Task{{Name: "only"}})
	require.NoError(t, err)
	require.Len(t, saved, 1)

	tasks, err := s.List(ctx, models.TaskQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, saved, tasks)
}
