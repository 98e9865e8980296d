// ABOUTME: Health check handler for load balancers and container probes

package handlers

import (
	"net/http"

	"tiktok-downloader-api/api/dto/responses"

	"github.com/gin-gonic/gin"
)

// HealthPath is the route of the health check
const HealthPath = "/healthz"

// Health reports that the process is serving requests
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "ok"})
}
