package cache

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes the Redis client used for aggregation caches.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	host := os.Getenv("CACHE_HOST")
	port := os.Getenv("CACHE_PORT")
	if host == "" || port == "" {
		return nil, fmt.Errorf("CACHE_HOST or CACHE_PORT is not set")
	}

	// Set Redis options.
	options := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     os.Getenv("CACHE_PASSWORD"),
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
	}

	client := redis.NewClient(options)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
