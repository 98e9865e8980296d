// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the extraction contract consumed by the API and the CLI

package interfaces

import (
	"context"

	"tiktok-downloader-api/core/domain"
)

// ExtractionService resolves a TikTok page URL into video metadata
type ExtractionService interface {
	// Extract validates rawURL and runs the page and fallback strategies.
	// It returns a ValidationError, NotFoundError or an upstream error.
	Extract(ctx context.Context, rawURL string) (*domain.ExtractionResult, error)
}
