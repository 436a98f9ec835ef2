package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// UserStore is a store.UserStore backed by a MongoDB collection.
type UserStore struct {
	coll *mongo.Collection
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new UserStore on db's users collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(UsersCollection)}
}

// EnsureIndexes creates the unique username index that backs duplicate detection.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	return err
}

// GetByUsername retrieves a user, including the password hash.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, store.ErrUserNotFound
		}
		return models.User{}, err
	}
	return doc.model(), nil
}

// Create inserts a user. A duplicate-key error from the unique index maps to ErrUsernameTaken.
func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	res, err := s.coll.InsertOne(ctx, userDocument{Username: user.Username, Password: user.PasswordHash})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, store.ErrUsernameTaken
		}
		return models.User{}, err
	}
	if user.ID, err = insertedHex(res.InsertedID); err != nil {
		return models.User{}, err
	}
	return user, nil
}
