package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// TrainingRepo handles MongoDB operations for qualification records
type TrainingRepo interface {
	Create(ctx context.Context, training *model.Training) (string, error)
	GetByID(ctx context.Context, id string) (*model.Training, error)
	ListByWorker(ctx context.Context, workerID string) ([]*model.Training, error)
	Update(ctx context.Context, training *model.Training) error
	Delete(ctx context.Context, id string) error
}

type trainingRepo struct {
	collection *mongo.Collection
}

// NewTrainingRepo creates a new training repository
func NewTrainingRepo(db *mongo.Database) TrainingRepo {
	return &trainingRepo{
		collection: db.Collection("trainings"),
	}
}

func (r *trainingRepo) Create(ctx context.Context, training *model.Training) (string, error) {
	training.CreatedAt = time.Now()
	training.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, training)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	training.ID = oid.Hex()
	return training.ID, nil
}

func (r *trainingRepo) GetByID(ctx context.Context, id string) (*model.Training, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var training model.Training
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&training)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	training.ID = id
	return &training, nil
}

func (r *trainingRepo) ListByWorker(ctx context.Context, workerID string) ([]*model.Training, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"workerId": workerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainings []*model.Training
	if err := cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *trainingRepo) Update(ctx context.Context, training *model.Training) error {
	oid, err := primitive.ObjectIDFromHex(training.ID)
	if err != nil {
		return err
	}

	training.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, training)
	return err
}

func (r *trainingRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
