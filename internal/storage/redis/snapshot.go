package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"matchsync/internal/domain"
)

// SnapshotStore keeps the discovery snapshot in Redis for deployments that
// run against a managed cache instead of Postgres. Same contract as the
// Postgres store: whole-value replace, no TTL — this is persistence, not
// caching.
type SnapshotStore struct {
	client *redis.Client
}

// NewClient parses redisURL and verifies connectivity.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Get(ctx context.Context, key string) (*domain.DiscoveryCache, error) {
	raw, err := s.client.Get(ctx, snapshotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cache domain.DiscoveryCache
	if err := json.Unmarshal(raw, &cache); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &cache, nil
}

func (s *SnapshotStore) Put(ctx context.Context, key string, cache *domain.DiscoveryCache) error {
	raw, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return s.client.Set(ctx, snapshotKey(key), raw, 0).Err()
}

func snapshotKey(key string) string {
	return "discovery:" + key
}
