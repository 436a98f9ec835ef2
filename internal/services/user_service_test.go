package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/tasks-api-be/internal/store"
)

var (
	errUserNotFound  = store.ErrUserNotFound
	errUsernameTaken = store.ErrUsernameTaken
)

func TestUserServiceRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, "testing", "testing")
	require.NoError(t, err)
	assert.Len(t, user.ID, 24)
	assert.Equal(t, "testing", user.Username)
	assert.Empty(t, user.PasswordHash)

	authed, err := env.users.Authenticate(ctx, "testing", "testing")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
	assert.Empty(t, authed.PasswordHash)

	events, err := env.events.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventUserRegistered, events[0].Type)
	assert.Nil(t, events[0].TaskID)
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "testing", "testing")
	require.NoError(t, err)

	_, err = env.users.Register(ctx, "testing", "another")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Usernames are case-sensitive.
	_, err = env.users.Register(ctx, "Testing", "testing")
	assert.NoError(t, err)
}

func TestUserServiceRegisterConstraintViolation(t *testing.T) {
	svc := NewUserService(racingUserStore{}, nil)

	_, err := svc.Register(context.Background(), "testing", "testing")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceAuthenticateFailuresAreIdentical(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "testing", "testing")
	require.NoError(t, err)

	_, unknown := env.users.Authenticate(ctx, "nobody", "testing")
	_, wrong := env.users.Authenticate(ctx, "testing", "contrseniaprueba")

	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())
}
