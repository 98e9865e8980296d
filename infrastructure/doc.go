// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-based cache that survives restarts
// - http/standard: net/http client with charset decoding
// - logger/structured: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 10*time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("cache.db")
//	defer cache.Close()
//
// # HTTP Client
//
// The client never retries; a failed request is terminal for the caller:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://www.tiktok.com/@user/video/123", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Video extracted", map[string]interface{}{
//	    "id":       "123",
//	    "strategy": "page",
//	})
package infrastructure
