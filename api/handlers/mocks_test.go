package handlers

import (
	"context"
	"io"
	"strings"
	"sync"

	"tiktok-downloader-api/core/domain"
	"tiktok-downloader-api/core/interfaces"
)

// mockExtractionService is a mock implementation of ExtractionService
type mockExtractionService struct {
	mu          sync.Mutex
	extractFunc func(ctx context.Context, rawURL string) (*domain.ExtractionResult, error)
	urls        []string
}

func (m *mockExtractionService) Extract(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
	m.mu.Lock()
	m.urls = append(m.urls, rawURL)
	m.mu.Unlock()

	if m.extractFunc != nil {
		return m.extractFunc(ctx, rawURL)
	}
	return nil, nil
}

// stubHTTPClient answers every GET through respond
type stubHTTPClient struct {
	mu       sync.Mutex
	respond  func(url string) (interfaces.Response, error)
	requests []string
}

func (s *stubHTTPClient) Get(_ context.Context, url string, _ map[string]string) (interfaces.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, url)
	s.mu.Unlock()
	return s.respond(url)
}

func (s *stubHTTPClient) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type stubResponse struct {
	status int
	body   string
}

func (r *stubResponse) StatusCode() int         { return r.status }
func (r *stubResponse) Body() io.ReadCloser     { return io.NopCloser(strings.NewReader(r.body)) }
func (r *stubResponse) Header(key string) string { return "" }
