// Package cache provides a Redis-backed cache for the comparison payload.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taxguide/api/internal/store"
)

const comparisonKey = "taxguide:comparison"

// Comparison caches the assembled comparison payload under a fixed key with
// a short TTL. All faults are returned to the caller, who treats them as a
// miss and falls through to the database.
type Comparison struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(redisURL string, ttl time.Duration) (*Comparison, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client, ttl), nil
}

// NewWithClient builds a cache over an existing client. Used by tests with
// miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *Comparison {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Comparison{client: client, ttl: ttl}
}

// Get returns the cached payload. ok is false on a miss or any fault.
func (c *Comparison) Get(ctx context.Context) (store.ComparisonData, bool, error) {
	raw, err := c.client.Get(ctx, comparisonKey).Result()
	if err == redis.Nil {
		return store.ComparisonData{}, false, nil
	}
	if err != nil {
		return store.ComparisonData{}, false, fmt.Errorf("get comparison cache: %w", err)
	}

	var data store.ComparisonData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return store.ComparisonData{}, false, fmt.Errorf("decode comparison cache: %w", err)
	}
	return data, true, nil
}

// Set stores the payload for the configured TTL.
func (c *Comparison) Set(ctx context.Context, data store.ComparisonData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode comparison cache: %w", err)
	}
	if err := c.client.Set(ctx, comparisonKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set comparison cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached payload. Called after writes to any of the
// tables the comparison reads.
func (c *Comparison) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, comparisonKey).Err(); err != nil {
		return fmt.Errorf("invalidate comparison cache: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Comparison) Close() error {
	return c.client.Close()
}
