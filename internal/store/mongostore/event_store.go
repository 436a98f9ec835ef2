package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// EventStore is a store.EventStore backed by a MongoDB collection.
type EventStore struct {
	coll *mongo.Collection
}

var _ store.EventStore = (*EventStore)(nil)

// NewEventStore creates a new EventStore on db's events collection.
func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{coll: db.Collection(EventsCollection)}
}

// Create records an event, stamping its ID and creation time.
func (s *EventStore) Create(ctx context.Context, event models.Event) (models.Event, error) {
	doc := eventDocument{
		ID:        primitive.NewObjectID(),
		Type:      event.Type,
		Level:     event.Level,
		Message:   event.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if event.TaskID != nil {
		if oid, err := primitive.ObjectIDFromHex(*event.TaskID); err == nil {
			doc.TaskID = &oid
		}
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return models.Event{}, err
	}
	return doc.model(), nil
}

// Recent returns up to limit events, newest first.
func (s *EventStore) Recent(ctx context.Context, limit int) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	events := make([]models.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.model())
	}
	return events, nil
}
