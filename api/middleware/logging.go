// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Logs request details, response status, and timing information

package middleware

import (
	"context"
	"net/http"
	"time"

	"tiktok-downloader-api/core/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier on responses
const RequestIDHeader = "X-Request-ID"

const defaultSlowRequestThreshold = 5 * time.Second

// RequestIDKey is the context key for request ID
type RequestIDKey struct{}

// RequestLoggingMiddleware creates a middleware that logs all requests
func RequestLoggingMiddleware(logger interfaces.Logger) gin.HandlerFunc {
	return RequestLoggingMiddlewareWithThreshold(logger, defaultSlowRequestThreshold)
}

// RequestLoggingMiddlewareWithThreshold logs requests and warns about those slower than threshold
func RequestLoggingMiddlewareWithThreshold(logger interfaces.Logger, threshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Header(RequestIDHeader, requestID)

		// Outbound calls made with the request context pick the ID up
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), requestID))

		start := time.Now()
		path := c.Request.URL.Path

		logger.Info("Request started", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       path,
			"remote_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		logger.Info("Request completed", map[string]interface{}{
			"request_id":  requestID,
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration":    duration.String(),
			"duration_ms": duration.Milliseconds(),
		})

		if duration > threshold {
			logger.Warn("Slow request detected", map[string]interface{}{
				"request_id": requestID,
				"method":     c.Request.Method,
				"path":       path,
				"duration":   duration.String(),
			})
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed with server error", map[string]interface{}{
				"request_id": requestID,
				"method":     c.Request.Method,
				"path":       path,
				"status":     status,
			})
		}
	}
}

// WithRequestID stores a request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, requestID)
}

// RequestIDFromContext retrieves the request ID stored by the logging middleware
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()

	requestID := RequestIDFromContext(req.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"host":       req.URL.Host,
	})

	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}
