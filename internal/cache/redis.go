package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "scorecheck:"

// RedisCache is the hot payload cache in front of the data-source API.
// Payloads are raw JSON stored under request-derived keys.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetPayload returns the cached payload for a request key, or (nil, nil) on
// a miss.
func (rc *RedisCache) GetPayload(ctx context.Context, key string) ([]byte, error) {
	payload, err := rc.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// SetPayload stores a payload under a request key with a TTL.
func (rc *RedisCache) SetPayload(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return rc.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}
