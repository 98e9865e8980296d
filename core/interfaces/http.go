package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// This abstraction allows for easy mocking in tests and keeps the
// extraction pipeline free of transport details.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// headers are set on the request, overriding client defaults with the same name.
	// A response is returned for any status code; callers decide what a failure is.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
