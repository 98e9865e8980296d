// ABOUTME: Request DTOs for the extraction endpoint
// ABOUTME: The url is always read from the query string, for GET and POST alike

package requests

// ExtractRequest carries the TikTok page URL to resolve.
// URL is passed on verbatim; surrounding whitespace makes it invalid.
type ExtractRequest struct {
	URL string `form:"url"`
}
