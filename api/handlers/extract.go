// ABOUTME: Extraction handler resolving TikTok page URLs into downloadable media URLs
// ABOUTME: Serves GET and POST on /api and / with the url query parameter

package handlers

import (
	"net/http"

	"tiktok-downloader-api/api/dto/mappers"
	"tiktok-downloader-api/api/dto/requests"
	"tiktok-downloader-api/core/interfaces"

	"github.com/gin-gonic/gin"
)

// ExtractPaths are the routes the extraction handler is mounted on
var ExtractPaths = []string{"/api", "/"}

// ExtractHandler handles extraction HTTP requests
type ExtractHandler struct {
	service interfaces.ExtractionService
	logger  interfaces.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(service interfaces.ExtractionService, logger interfaces.Logger) *ExtractHandler {
	return &ExtractHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the extraction routes
func (h *ExtractHandler) RegisterRoutes(router gin.IRoutes) {
	for _, path := range ExtractPaths {
		router.GET(path, h.Extract)
		router.POST(path, h.Extract)
	}
}

// Extract handles a single extraction request
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req requests.ExtractRequest
	// Binding a single string from the query cannot fail
	_ = c.ShouldBindQuery(&req)

	result, err := h.service.Extract(c.Request.Context(), req.URL)
	if err != nil {
		resp := mappers.ToErrorResponse(err)
		if resp.Code < http.StatusInternalServerError && h.logger != nil {
			h.logger.Debug("Extraction request rejected", map[string]interface{}{
				"url":    req.URL,
				"status": resp.Code,
				"reason": err.Error(),
			})
		}
		c.JSON(resp.Code, resp)
		return
	}

	c.JSON(http.StatusOK, mappers.ToSuccessResponse(result))
}
