package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hsemanager/internal/model"
)

// SubmissionRepo handles MongoDB operations for regulatory-watch submissions
type SubmissionRepo interface {
	Create(ctx context.Context, sub *model.Submission) (string, error)
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	GetLatestByProject(ctx context.Context, projectID, schemaVersion string) (*model.Submission, error)
	ListByProject(ctx context.Context, projectID string) ([]*model.Submission, error)
	Delete(ctx context.Context, id string) error
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("regwatch_submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, sub *model.Submission) (string, error) {
	sub.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	sub.ID = oid.Hex()
	return sub.ID, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var sub model.Submission
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return &sub, nil
}

// GetLatestByProject returns the most recent submission of a project for
// one catalogue version, or nil when the project has never submitted.
func (r *submissionRepo) GetLatestByProject(ctx context.Context, projectID, schemaVersion string) (*model.Submission, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "weekYear", Value: -1},
		{Key: "weekNumber", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	var sub model.Submission
	err := r.collection.FindOne(ctx, bson.M{
		"projectId":     projectID,
		"schemaVersion": schemaVersion,
	}, opts).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) ListByProject(ctx context.Context, projectID string) ([]*model.Submission, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "weekYear", Value: -1},
		{Key: "weekNumber", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*model.Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *submissionRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
