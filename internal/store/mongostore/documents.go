// Package mongostore implements the store contracts on MongoDB.
package mongostore

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/isdelr/tasks-api-be/internal/models"
)

// Collection names.
const (
	TasksCollection  = "tasks"
	UsersCollection  = "users"
	EventsCollection = "events"
)

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
}

func newTaskDocument(t models.Task) taskDocument {
	return taskDocument{Name: t.Name, Description: t.Description, Completed: t.Completed}
}

func (d taskDocument) model() models.Task {
	return models.Task{ID: d.ID.Hex(), Name: d.Name, Description: d.Description, Completed: d.Completed}
}

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"` // bcrypt hash
}

func (d userDocument) model() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username, PasswordHash: d.Password}
}

type eventDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Type      string              `bson:"type"`
	Level     string              `bson:"level"`
	Message   string              `bson:"message"`
	TaskID    *primitive.ObjectID `bson:"taskId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt"`
}

func (d eventDocument) model() models.Event {
	e := models.Event{ID: d.ID.Hex(), Type: d.Type, Level: d.Level, Message: d.Message, CreatedAt: d.CreatedAt}
	if d.TaskID != nil {
		hex := d.TaskID.Hex()
		e.TaskID = &hex
	}
	return e
}

// insertedHex renders an id reported by InsertOne/InsertMany.
func insertedHex(id interface{}) (string, error) {
	oid, ok := id.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", id)
	}
	return oid.Hex(), nil
}
