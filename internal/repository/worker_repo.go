package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// WorkerRepo handles MongoDB operations for the worker roster
type WorkerRepo interface {
	Create(ctx context.Context, worker *model.Worker) (string, error)
	GetByID(ctx context.Context, id string) (*model.Worker, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.Worker, error)
	Update(ctx context.Context, worker *model.Worker) error
	Delete(ctx context.Context, id string) error
}

type workerRepo struct {
	collection *mongo.Collection
}

// NewWorkerRepo creates a new worker repository
func NewWorkerRepo(db *mongo.Database) WorkerRepo {
	return &workerRepo{
		collection: db.Collection("workers"),
	}
}

func (r *workerRepo) Create(ctx context.Context, worker *model.Worker) (string, error) {
	worker.CreatedAt = time.Now()
	worker.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, worker)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	worker.ID = oid.Hex()
	return worker.ID, nil
}

func (r *workerRepo) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var worker model.Worker
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&worker)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	worker.ID = id
	return &worker, nil
}

func (r *workerRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Worker, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workers []*model.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *workerRepo) Update(ctx context.Context, worker *model.Worker) error {
	oid, err := primitive.ObjectIDFromHex(worker.ID)
	if err != nil {
		return err
	}

	worker.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, worker)
	return err
}

func (r *workerRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
