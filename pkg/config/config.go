// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, fallback, rate limiting, cache and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cache backend names accepted in CACHE_TYPE
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// DefaultFallbackURL is the public aggregation API queried when page extraction fails
const DefaultFallbackURL = "https://www.tikwm.com/api/"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Fallback configures the third-party aggregation API
	Fallback FallbackConfig

	// RateLimit configures the per-IP limiter
	RateLimit RateLimitConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// HTTPTimeout is the outbound request timeout in seconds
	HTTPTimeout int
}

// FallbackConfig holds fallback API configuration
type FallbackConfig struct {
	URL     string
	Enabled bool
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests allowed per window and IP, 0 disables limiting
	Limit int

	// Window is the window length in seconds
	Window int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is the result cache TTL in seconds
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8000"),
			HTTPTimeout: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Fallback: FallbackConfig{
			URL:     getEnvOrDefault("FALLBACK_API_URL", DefaultFallbackURL),
			Enabled: getEnvAsBoolOrDefault("FALLBACK_ENABLED", true),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window: getEnvAsIntOrDefault("RATE_WINDOW", 60),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheNone)),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 600),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// Timeout returns the outbound request timeout as a duration
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.HTTPTimeout) * time.Second
}

// WindowDuration returns the rate limit window as a duration
func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Second
}

// TTLDuration returns the result cache TTL as a duration
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.HTTPTimeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	switch c.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis, CacheSQLite:
	default:
		return fmt.Errorf("cache type must be one of none, memory, redis, sqlite, got %q", c.Cache.Type)
	}

	if c.Cache.Type == CacheRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == CacheSQLite && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.RateLimit.Limit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Limit > 0 && c.RateLimit.Window < 1 {
		return errors.New("rate window must be at least 1 second")
	}

	if c.Fallback.Enabled {
		u, err := url.Parse(c.Fallback.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("fallback api url %q is not a valid absolute url", c.Fallback.URL)
		}
	}

	return nil
}
