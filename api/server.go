// ABOUTME: Gin engine configuration and setup
// ABOUTME: Wires recovery, logging, CORS, rate limiting and compression around the handlers

package api

import (
	"fmt"
	"net/http"
	"time"

	"tiktok-downloader-api/api/dto/responses"
	"tiktok-downloader-api/api/handlers"
	"tiktok-downloader-api/api/middleware"
	"tiktok-downloader-api/core/interfaces"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for the API
type RouterConfig struct {
	Service    interfaces.ExtractionService
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window
	EnableGzip bool
}

// Router is the gin engine serving the extraction API.
// Close releases the background work started for it.
type Router struct {
	*gin.Engine
	limiter *middleware.RateLimiter
}

// NewRouter creates the gin engine serving the extraction API
func NewRouter(cfg RouterConfig) *Router {
	engine := gin.New()

	// A redirect would be written before any middleware runs and carry no CORS headers
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.NewInternalErrorResponse(fmt.Errorf("panic: %v", recovered)))
	}))

	if cfg.Logger != nil {
		engine.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	// CORS runs before the limiter so preflight requests are never throttled
	engine.Use(middleware.CORSMiddleware())

	router := &Router{Engine: engine}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		router.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		engine.Use(middleware.RateLimitMiddleware(router.limiter))
	}

	if cfg.EnableGzip {
		engine.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	engine.GET(handlers.HealthPath, handlers.Health)
	handlers.NewExtractHandler(cfg.Service, cfg.Logger).RegisterRoutes(engine)

	return router
}

// Close stops the rate limiter cleanup; it is safe to call more than once
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}
