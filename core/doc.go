// Package core contains the business logic of the TikTok downloader.
// It is framework-agnostic and runs without the HTTP layer, as the
// extract command of the CLI shows.
//
// The core package is organized into several sub-packages:
//
// - domain: ExtractionResult and TikTok URL helpers
// - extract: page parsing, fallback API client and the extraction service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "tiktok-downloader-api/core/extract"
//	    "tiktok-downloader-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      nil,          // optional, implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := extract.NewService(deps, extract.DefaultOptions())
//
//	result, err := service.Extract(ctx, "https://www.tiktok.com/@user/video/123")
//	if errors.IsNotFound(err) {
//	    // neither the page nor the fallback API had a video URL
//	}
package core
