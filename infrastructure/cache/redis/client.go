// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares extraction results across API replicas with TTL support

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tiktok-downloader-api/pkg/config"
)

const (
	maxKeyLength = 2048
	pingTimeout  = 5 * time.Second
	dialTimeout  = 3 * time.Second
	ioTimeout    = 2 * time.Second
)

var (
	// ErrCacheMiss is returned when a key is absent or expired
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrInvalidKey is returned for empty or oversized keys
	ErrInvalidKey = errors.New("cache: invalid key")

	// ErrEmptyValue is returned when storing an empty payload
	ErrEmptyValue = errors.New("cache: value cannot be empty")
)

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance and checks the connection
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	cache := newRedisCache(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := cache.client.Ping(ctx).Err(); err != nil {
		cache.client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Address, err)
	}

	return cache, nil
}

// newRedisCache builds the client without checking the connection.
// A cache lookup must not stall a request, so every network step is bounded.
func newRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  dialTimeout,
			ReadTimeout:  ioTimeout,
			WriteTimeout: ioTimeout,
		}),
	}
}

func validateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}
	return nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL, 0 or less means no expiration
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return ErrEmptyValue
	}
	// go-redis reads a negative TTL as KEEPTTL
	if ttl < 0 {
		ttl = 0
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a key from Redis; a missing key is not an error
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
