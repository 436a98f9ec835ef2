package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/store"
)

// TaskStore is a store.TaskStore backed by a MongoDB collection.
type TaskStore struct {
	db   *mongo.Database
	coll *mongo.Collection
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new TaskStore on db's tasks collection.
func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{db: db, coll: db.Collection(TasksCollection)}
}

// Ping checks the deployment is reachable.
func (s *TaskStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// List returns one page of tasks matching q.
func (s *TaskStore) List(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	cur, err := s.coll.Find(ctx, listFilter(q), listOptions(q))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.model())
	}
	return tasks, nil
}

// GetByID retrieves a single task by its ID.
func (s *TaskStore) GetByID(ctx context.Context, id string) (models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, store.ErrTaskNotFound
	}
	var doc taskDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, store.ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return doc.model(), nil
}

// Create inserts a task and returns it with the ID MongoDB assigned.
func (s *TaskStore) Create(ctx context.Context, task models.Task) (models.Task, error) {
	res, err := s.coll.InsertOne(ctx, newTaskDocument(task))
	if err != nil {
		return models.Task{}, err
	}
	if task.ID, err = insertedHex(res.InsertedID); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update writes only the fields present in patch and returns the updated document.
func (s *TaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	if patch.Empty() {
		return s.GetByID(ctx, id)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, store.ErrTaskNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc taskDocument
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, patchUpdate(patch), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, store.ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return doc.model(), nil
}

// Delete removes a task.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrTaskNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// ReplaceAll empties the collection and inserts tasks. The two steps are not atomic.
func (s *TaskStore) ReplaceAll(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return []models.Task{}, nil
	}

	docs := make([]interface{}, len(tasks))
	for i, task := range tasks {
		docs[i] = newTaskDocument(task)
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	saved := make([]models.Task, len(tasks))
	for i, task := range tasks {
		if task.ID, err = insertedHex(res.InsertedIDs[i]); err != nil {
			return nil, err
		}
		saved[i] = task
	}
	return saved, nil
}
