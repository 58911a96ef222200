package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DraftKV is the Redis-backed keyed store behind the draft adapter.
// It satisfies draft.KV.
type DraftKV struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftKV creates the draft store. Drafts that sit untouched for a
// week are abandoned sessions and are left to expire.
func NewDraftKV(client *redis.Client) *DraftKV {
	return &DraftKV{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *DraftKV) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *DraftKV) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

func (c *DraftKV) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
