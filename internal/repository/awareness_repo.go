package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hsemanager/internal/model"
)

// AwarenessRepo handles MongoDB operations for awareness sessions
type AwarenessRepo interface {
	Create(ctx context.Context, session *model.AwarenessSession) (string, error)
	GetByID(ctx context.Context, id string) (*model.AwarenessSession, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.AwarenessSession, error)
	Update(ctx context.Context, session *model.AwarenessSession) error
	Delete(ctx context.Context, id string) error
}

type awarenessRepo struct {
	collection *mongo.Collection
}

// NewAwarenessRepo creates a new awareness session repository
func NewAwarenessRepo(db *mongo.Database) AwarenessRepo {
	return &awarenessRepo{
		collection: db.Collection("awareness_sessions"),
	}
}

func (r *awarenessRepo) Create(ctx context.Context, session *model.AwarenessSession) (string, error) {
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	session.ID = oid.Hex()
	return session.ID, nil
}

func (r *awarenessRepo) GetByID(ctx context.Context, id string) (*model.AwarenessSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var session model.AwarenessSession
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session.ID = id
	return &session, nil
}

func (r *awarenessRepo) ListByProject(ctx context.Context, projectID string) ([]*model.AwarenessSession, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.AwarenessSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *awarenessRepo) Update(ctx context.Context, session *model.AwarenessSession) error {
	oid, err := primitive.ObjectIDFromHex(session.ID)
	if err != nil {
		return err
	}

	session.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, session)
	return err
}

func (r *awarenessRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
