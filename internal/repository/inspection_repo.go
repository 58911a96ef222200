package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// InspectionRepo handles MongoDB operations for site inspections
type InspectionRepo interface {
	Create(ctx context.Context, inspection *model.Inspection) (string, error)
	GetByID(ctx context.Context, id string) (*model.Inspection, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.Inspection, error)
	Update(ctx context.Context, inspection *model.Inspection) error
	Delete(ctx context.Context, id string) error
}

type inspectionRepo struct {
	collection *mongo.Collection
}

// NewInspectionRepo creates a new inspection repository
func NewInspectionRepo(db *mongo.Database) InspectionRepo {
	return &inspectionRepo{
		collection: db.Collection("inspections"),
	}
}

func (r *inspectionRepo) Create(ctx context.Context, inspection *model.Inspection) (string, error) {
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, inspection)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	inspection.ID = oid.Hex()
	return inspection.ID, nil
}

func (r *inspectionRepo) GetByID(ctx context.Context, id string) (*model.Inspection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var inspection model.Inspection
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&inspection)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	inspection.ID = id
	return &inspection, nil
}

func (r *inspectionRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Inspection, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inspections []*model.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, err
	}
	return inspections, nil
}

func (r *inspectionRepo) Update(ctx context.Context, inspection *model.Inspection) error {
	oid, err := primitive.ObjectIDFromHex(inspection.ID)
	if err != nil {
		return err
	}

	inspection.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, inspection)
	return err
}

func (r *inspectionRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
