package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hsemanager/internal/model"
)

// ProjectScore is the cached headline figure shown on the dashboard:
// the latest submitted compliance score of a project per variant.
type ProjectScore struct {
	ProjectID    string    `json:"projectId"`
	Variant      string    `json:"variant"`
	WeekYear     int       `json:"weekYear"`
	WeekNumber   int       `json:"weekNumber"`
	OverallScore *float64  `json:"overallScore"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// ScoreCache handles Redis operations for dashboard score lookups
type ScoreCache interface {
	SetLatest(ctx context.Context, score *ProjectScore) error
	GetLatest(ctx context.Context, projectID string, variant model.SchemaVariant) (*ProjectScore, error)
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score cache
func NewScoreCache(client *redis.Client) ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func (c *scoreCache) key(projectID string, variant string) string {
	return fmt.Sprintf("project:%s:score:%s", projectID, variant)
}

func (c *scoreCache) SetLatest(ctx context.Context, score *ProjectScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(score.ProjectID, score.Variant), data, c.ttl).Err()
}

func (c *scoreCache) GetLatest(ctx context.Context, projectID string, variant model.SchemaVariant) (*ProjectScore, error) {
	data, err := c.client.Get(ctx, c.key(projectID, string(variant))).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var score ProjectScore
	if err := json.Unmarshal([]byte(data), &score); err != nil {
		return nil, err
	}
	return &score, nil
}
