package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"tiktok-downloader-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	getFunc  func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	requests []string
	headers  []map[string]string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, url)
	m.headers = append(m.headers, headers)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, errors.New("unexpected request")
}

func (m *mockHTTPClient) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a map backed implementation of the Cache interface
type mockCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	ttls   map[string]time.Duration
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{
		items: make(map[string][]byte),
		ttls:  make(map[string]time.Duration),
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger records log calls
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, level+": "+msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg) }
