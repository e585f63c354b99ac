// internal/infrastructure/storage/redis.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/techvista/storefront/internal/config"
)

// RedisStore is a Store backed by Redis. Keys are namespaced with the
// configured prefix so several storefront instances can share one server.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis-backed store and verifies the connection
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Storage.Redis.Password,
		DB:       cfg.Storage.Redis.DB,
		PoolSize: cfg.Storage.Redis.PoolSize,

		// Connection timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: rdb,
		prefix: cfg.Storage.KeyPrefix,
	}, nil
}

// Load retrieves the value for key
func (r *RedisStore) Load(key string) (string, bool, error) {
	ctx := context.Background()

	value, err := r.client.Get(ctx, r.namespaced(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load key %q: %w", key, err)
	}

	return value, true, nil
}

// Save stores value under key. Values are kept without expiration; the
// storefront clears its own keys explicitly.
func (r *RedisStore) Save(key, value string) error {
	ctx := context.Background()

	if err := r.client.Set(ctx, r.namespaced(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save key %q: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *RedisStore) Delete(key string) error {
	ctx := context.Background()

	if err := r.client.Del(ctx, r.namespaced(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Health checks the Redis connection health
func (r *RedisStore) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) namespaced(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}
