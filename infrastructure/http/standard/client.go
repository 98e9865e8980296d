// ABOUTME: Standard HTTP client implementation with per-request headers and timeout support
// ABOUTME: Decodes HTML bodies to UTF-8 so parsers see a single encoding

package standard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"tiktok-downloader-api/core/interfaces"
)

const userAgent = "TikTokDownloaderAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewStandardHTTPClientWithTransport creates a client on top of transport,
// e.g. a logging round tripper
func NewStandardHTTPClientWithTransport(timeout time.Duration, transport http.RoundTripper) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Get performs an HTTP GET request. There is no retry: every failure is final.
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       decodeBody(resp),
		headers:    resp.Header,
	}, nil
}

// decodeBody converts HTML bodies to UTF-8 based on Content-Type and meta tags
func decodeBody(resp *http.Response) io.ReadCloser {
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "html") {
		return resp.Body
	}

	reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return resp.Body
	}
	return &decodedBody{Reader: reader, closer: resp.Body}
}

type decodedBody struct {
	io.Reader
	closer io.Closer
}

func (b *decodedBody) Close() error {
	return b.closer.Close()
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
