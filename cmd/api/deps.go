// ABOUTME: Wiring of configuration into loggers, caches, clients and the extraction service
// ABOUTME: Shared by the serve and extract commands

package main

import (
	"io"
	"net/http"

	"tiktok-downloader-api/api/middleware"
	"tiktok-downloader-api/core/extract"
	"tiktok-downloader-api/core/interfaces"
	"tiktok-downloader-api/infrastructure/cache/memory"
	"tiktok-downloader-api/infrastructure/cache/redis"
	"tiktok-downloader-api/infrastructure/cache/sqlite"
	stdhttp "tiktok-downloader-api/infrastructure/http/standard"
	"tiktok-downloader-api/infrastructure/logger/structured"
	"tiktok-downloader-api/pkg/config"
)

// loadConfig reads and validates configuration from the environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to LOG_FILE when set, otherwise to console
func newLogger(cfg config.LogConfig, console io.Writer) *structured.Logger {
	opts := structured.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   cfg.File,
	}
	if opts.File == "" {
		return structured.NewLoggerWithWriter(console, opts)
	}
	return structured.NewLogger(opts)
}

// newCache builds the configured result cache.
// It returns a nil Cache for "none" and falls back to memory when a backend is unreachable.
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}

	switch cfg.Type {
	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, func() { redisCache.Close() }

	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), noop
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, func() { sqliteCache.Close() }

	case config.CacheMemory:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), noop

	default:
		logger.Info("Result cache disabled", nil)
		return nil, noop
	}
}

// newHTTPClient builds the outbound client, logging every request at debug level
func newHTTPClient(cfg config.ServerConfig, logger interfaces.Logger) interfaces.HTTPClient {
	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Logger:    logger,
	}
	return stdhttp.NewStandardHTTPClientWithTransport(cfg.Timeout(), transport)
}

// newService builds the extraction service and the cleanup for its resources
func newService(cfg *config.Config, logger interfaces.Logger) (*extract.Service, func()) {
	cache, closeCache := newCache(cfg.Cache, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: newHTTPClient(cfg.Server, logger),
		Logger:     logger,
	}

	service := extract.NewService(deps, extract.Options{
		FallbackURL:     cfg.Fallback.URL,
		DisableFallback: !cfg.Fallback.Enabled,
		CacheTTL:        cfg.Cache.TTLDuration(),
	})

	return service, closeCache
}
