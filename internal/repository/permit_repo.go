package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// PermitRepo handles MongoDB operations for work permits
type PermitRepo interface {
	Create(ctx context.Context, permit *model.WorkPermit) (string, error)
	GetByID(ctx context.Context, id string) (*model.WorkPermit, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.WorkPermit, error)
	ListOpenByProject(ctx context.Context, projectID string) ([]*model.WorkPermit, error)
	Update(ctx context.Context, permit *model.WorkPermit) error
	Delete(ctx context.Context, id string) error
}

type permitRepo struct {
	collection *mongo.Collection
}

// NewPermitRepo creates a new permit repository
func NewPermitRepo(db *mongo.Database) PermitRepo {
	return &permitRepo{
		collection: db.Collection("work_permits"),
	}
}

func (r *permitRepo) Create(ctx context.Context, permit *model.WorkPermit) (string, error) {
	permit.CreatedAt = time.Now()
	permit.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, permit)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	permit.ID = oid.Hex()
	return permit.ID, nil
}

func (r *permitRepo) GetByID(ctx context.Context, id string) (*model.WorkPermit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var permit model.WorkPermit
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&permit)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	permit.ID = id
	return &permit, nil
}

func (r *permitRepo) ListByProject(ctx context.Context, projectID string) ([]*model.WorkPermit, error) {
	return r.find(ctx, bson.M{"projectId": projectID})
}

func (r *permitRepo) ListOpenByProject(ctx context.Context, projectID string) ([]*model.WorkPermit, error) {
	return r.find(ctx, bson.M{"projectId": projectID, "status": model.PermitOpen})
}

func (r *permitRepo) find(ctx context.Context, filter bson.M) ([]*model.WorkPermit, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var permits []*model.WorkPermit
	if err := cursor.All(ctx, &permits); err != nil {
		return nil, err
	}
	return permits, nil
}

func (r *permitRepo) Update(ctx context.Context, permit *model.WorkPermit) error {
	oid, err := primitive.ObjectIDFromHex(permit.ID)
	if err != nil {
		return err
	}

	permit.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, permit)
	return err
}

func (r *permitRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
