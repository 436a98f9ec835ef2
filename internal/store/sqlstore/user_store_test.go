package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore(newTestDB(t))

	created, err := s.Create(ctx, models.User{Username: "testing", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)

	got, err := s.GetByUsername(ctx, "testing")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetByUsername(ctx, "Testing")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.Create(ctx, models.User{Username: "testing", PasswordHash: "other"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	_, err = s.Create(ctx, models.User{Username: "Testing", PasswordHash: "other"})
	assert.NoError(t, err, "usernames are case-sensitive")
}
