// ABOUTME: Video domain model holding the metadata extracted for one TikTok URL
// ABOUTME: Built per request and discarded once the response is written

package domain

import "strings"

// Strategy names the extraction step that produced the video URL
type Strategy string

const (
	// StrategyPage means the video URL came from the TikTok page itself
	StrategyPage Strategy = "page"

	// StrategyFallback means the video URL came from the aggregation API
	StrategyFallback Strategy = "fallback"
)

// SourceTikTok is the source label reported for every extraction
const SourceTikTok = "TikTok"

// ExtractionResult represents the metadata extracted for a single video
type ExtractionResult struct {
	// ID is the last path segment of the canonical og:url
	ID string `json:"id"`

	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	AuthorName string `json:"authorName"`

	// VideoURL is the direct video URL, required for a successful extraction
	VideoURL string `json:"videoUrl"`

	MusicURL string `json:"musicUrl"`

	Strategy Strategy `json:"strategy,omitempty"`
}

// HasVideo reports whether a direct video URL was found
func (r *ExtractionResult) HasVideo() bool {
	return r != nil && r.VideoURL != ""
}

// VideoIDFromCanonical returns the last "/" separated segment of a canonical URL.
// A trailing slash yields an empty ID.
func VideoIDFromCanonical(canonical string) string {
	if canonical == "" {
		return ""
	}
	parts := strings.Split(canonical, "/")
	return parts[len(parts)-1]
}
