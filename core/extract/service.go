// ABOUTME: Extraction service running the page strategy with the aggregation API as fallback
// ABOUTME: Validates input, caches successful results and classifies every failure

package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tiktok-downloader-api/core/domain"
	"tiktok-downloader-api/core/errors"
	"tiktok-downloader-api/core/interfaces"
)

// BrowserUserAgent is sent with the page request so TikTok serves the full HTML
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	cacheKeyPrefix  = "tiktok:"
	defaultCacheTTL = 10 * time.Minute
)

// Static messages returned to API callers for validation failures
const (
	MessageMissingParameter = "URL parameter is required"
	MessageInvalidURL       = "Invalid URL. Please provide a valid TikTok URL"
)

// Options configures the extraction service
type Options struct {
	// FallbackURL is the aggregation API base URL
	FallbackURL string

	// DisableFallback skips the aggregation API step
	DisableFallback bool

	// CacheTTL is how long a successful result stays in deps.Cache
	CacheTTL time.Duration
}

// DefaultOptions returns options querying DefaultFallbackURL
func DefaultOptions() Options {
	return Options{
		FallbackURL: DefaultFallbackURL,
		CacheTTL:    defaultCacheTTL,
	}
}

// Service implements interfaces.ExtractionService
type Service struct {
	deps     interfaces.Dependencies
	fallback *FallbackClient
	opts     Options
}

// NewService creates a new extraction service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &Service{
		deps:     deps,
		fallback: NewFallbackClient(deps.HTTPClient, opts.FallbackURL),
		opts:     opts,
	}
}

// ValidateURL checks the url parameter before any outbound request is made
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &errors.ValidationError{
			Field:   "url",
			Message: MessageMissingParameter,
			Err:     errors.ErrMissingParameter,
		}
	}
	if !domain.IsTikTokURL(rawURL) {
		return &errors.ValidationError{
			Field:   "url",
			Message: MessageInvalidURL,
			Err:     errors.ErrInvalidURLFormat,
		}
	}
	return nil
}

// Extract resolves rawURL into video metadata
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	if cached := s.cached(ctx, rawURL); cached != nil {
		s.log().Debug("Serving cached extraction", map[string]interface{}{
			"url": rawURL,
		})
		return cached, nil
	}

	result, err := s.extractFromPage(ctx, rawURL)
	if err != nil {
		s.log().Error("Page extraction failed", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return nil, err
	}

	if !result.HasVideo() && !s.opts.DisableFallback {
		s.log().Info("No video URL on page, querying fallback API", map[string]interface{}{
			"url": rawURL,
		})

		fb, err := s.fallback.Lookup(ctx, rawURL)
		if err != nil {
			s.log().Error("Fallback API request failed", map[string]interface{}{
				"url":   rawURL,
				"error": err.Error(),
			})
			return nil, err
		}
		if fb.Found {
			result.VideoURL = fb.Play
			result.MusicURL = fb.Music
			if result.VideoURL != "" {
				result.Strategy = domain.StrategyFallback
			}
		}
	}

	if !result.HasVideo() {
		return nil, &errors.NotFoundError{Resource: "video", ID: rawURL}
	}

	s.log().Info("Video extracted", map[string]interface{}{
		"url":      rawURL,
		"id":       result.ID,
		"strategy": string(result.Strategy),
	})

	s.store(ctx, rawURL, result)
	return result, nil
}

func (s *Service) extractFromPage(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, rawURL, map[string]string{
		"User-Agent": BrowserUserAgent,
	})
	if err != nil {
		return nil, errors.WrapError(err, "fetch tiktok page")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        "tiktok",
		}
	}

	return ParsePage(resp.Body())
}

func (s *Service) cached(ctx context.Context, rawURL string) *domain.ExtractionResult {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := s.deps.Cache.Get(ctx, cacheKeyPrefix+rawURL)
	if err != nil || data == nil {
		return nil
	}
	var result domain.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.log().Warn("Discarding unreadable cache entry", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
		return nil
	}
	if !result.HasVideo() {
		return nil
	}
	return &result
}

func (s *Service) store(ctx context.Context, rawURL string, result *domain.ExtractionResult) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKeyPrefix+rawURL, data, s.opts.CacheTTL); err != nil {
		s.log().Warn("Failed to cache extraction", map[string]interface{}{
			"url":   rawURL,
			"error": err.Error(),
		})
	}
}

func (s *Service) log() interfaces.Logger {
	if s.deps.Logger == nil {
		return nopLogger{}
	}
	return s.deps.Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
