package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// UserStore is a store.UserStore backed by SQLite.
type UserStore struct {
	db *sql.DB
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// GetByUsername retrieves a user, including the password hash. Matching is case-sensitive.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, password_hash FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, store.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Create inserts a user. The UNIQUE index on username is the source of truth for duplicates.
func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = newID()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)",
		user.ID, user.Username, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, store.ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}
