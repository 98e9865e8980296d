package extract

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "tiktok-downloader-api/core/errors"
	"tiktok-downloader-api/core/interfaces"
)

func TestFallbackClient_Lookup(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       `{"code":0,"data":{"play":"https://fb.example/v.mp4","music":"https://fb.example/m.mp3"}}`,
			}, nil
		},
	}

	fb := NewFallbackClient(client, "https://fallback.test/api/")
	result, err := fb.Lookup(context.Background(), testPageURL)
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, "https://fb.example/v.mp4", result.Play)
	assert.Equal(t, "https://fb.example/m.mp3", result.Music)

	calls := client.calls()
	require.Len(t, calls, 1)
	u, err := url.Parse(calls[0])
	require.NoError(t, err)
	assert.Equal(t, "fallback.test", u.Host)
	assert.Equal(t, "/api/", u.Path)
	assert.Equal(t, testPageURL, u.Query().Get("url"))
}

func TestFallbackClient_DefaultBaseURL(t *testing.T) {
	fb := NewFallbackClient(&mockHTTPClient{}, "")
	endpoint, err := fb.endpoint(testPageURL)
	require.NoError(t, err)

	assert.Equal(t, "https://www.tikwm.com/api/?url="+url.QueryEscape(testPageURL), endpoint)
}

func TestFallbackClient_NoData(t *testing.T) {
	bodies := map[string]string{
		"missing data":      `{"code":-1,"msg":"Url parsing is failed!"}`,
		"null data":         `{"code":-1,"data":null}`,
		"false data":        `{"code":-1,"data":false}`,
		"empty string data": `{"code":-1,"data":""}`,
		"zero data":         `{"code":-1,"data":0}`,
		"empty array data":  `{"code":-1,"data":[]}`,
		"array data":        `{"code":-1,"data":[{"play":"https://fb.example/v.mp4"}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := &mockHTTPClient{
				getFunc: func(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
					return &mockResponse{statusCode: 200, body: body}, nil
				},
			}

			result, err := NewFallbackClient(client, "").Lookup(context.Background(), testPageURL)
			require.NoError(t, err)
			assert.False(t, result.Found)
			assert.Empty(t, result.Play)
			assert.Empty(t, result.Music)
		})
	}
}

func TestFallbackClient_EmptyObjectIsFound(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"data":{}}`}, nil
		},
	}

	result, err := NewFallbackClient(client, "").Lookup(context.Background(), testPageURL)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Empty(t, result.Play)
}

func TestFallbackClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		response    *mockResponse
		err         error
		externalAPI bool
	}{
		{
			name:        "non 2xx status",
			response:    &mockResponse{statusCode: 502, body: "bad gateway"},
			externalAPI: true,
		},
		{
			name:     "malformed json",
			response: &mockResponse{statusCode: 200, body: "<html>"},
		},
		{
			name:     "truncated json",
			response: &mockResponse{statusCode: 200, body: `{"data":{"play":`},
		},
		{
			name:     "data object with wrong field types",
			response: &mockResponse{statusCode: 200, body: `{"data":{"play":123}}`},
		},
		{
			name: "network failure",
			err:  errors.New("dial tcp: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockHTTPClient{
				getFunc: func(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return tt.response, nil
				},
			}

			result, err := NewFallbackClient(client, "").Lookup(context.Background(), testPageURL)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.externalAPI, coreerrors.IsExternalAPI(err))
		})
	}
}

func TestFallbackClient_InvalidBaseURL(t *testing.T) {
	fb := NewFallbackClient(&mockHTTPClient{}, "://bad")
	_, err := fb.Lookup(context.Background(), testPageURL)
	assert.Error(t, err)
}
