package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// ProjectRepo handles MongoDB operations for projects
type ProjectRepo interface {
	Create(ctx context.Context, project *model.Project) (string, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	collection *mongo.Collection
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(db *mongo.Database) ProjectRepo {
	return &projectRepo{
		collection: db.Collection("projects"),
	}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) (string, error) {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	project.ID = oid.Hex()
	return project.ID, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var project model.Project
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	project.ID = id
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context) ([]*model.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*model.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *model.Project) error {
	oid, err := primitive.ObjectIDFromHex(project.ID)
	if err != nil {
		return err
	}

	project.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, project)
	return err
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
