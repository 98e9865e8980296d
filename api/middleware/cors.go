// ABOUTME: CORS middleware allowing any origin to call the API
// ABOUTME: Answers preflight OPTIONS requests on every path with an empty 200

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS header values sent with every response
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type"
)

// CORSMiddleware sets permissive CORS headers and short-circuits OPTIONS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", AllowOrigin)
		c.Header("Access-Control-Allow-Methods", AllowMethods)
		c.Header("Access-Control-Allow-Headers", AllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
