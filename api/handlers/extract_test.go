package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tiktok-downloader-api/api/dto/responses"
	"tiktok-downloader-api/core/domain"
	coreerrors "tiktok-downloader-api/core/errors"
	"tiktok-downloader-api/core/extract"
	"tiktok-downloader-api/core/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVideoURL = "https://www.tiktok.com/@user/video/123"

func newTestRouter(service interfaces.ExtractionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewExtractHandler(service, nil).RegisterRoutes(router)
	router.GET(HealthPath, Health)
	return router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func extractTarget(path, rawURL string) string {
	return path + "?" + url.Values{"url": {rawURL}}.Encode()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) responses.ErrorResponse {
	t.Helper()
	var body responses.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestExtractHandler_Success(t *testing.T) {
	service := &mockExtractionService{
		extractFunc: func(ctx context.Context, rawURL string) (*domain.ExtractionResult, error) {
			return &domain.ExtractionResult{
				ID:         "123",
				Title:      "A dance video",
				Thumbnail:  "https://cdn.example/thumb.jpg",
				AuthorName: "user",
				VideoURL:   "https://cdn.example/v.mp4",
				MusicURL:   "https://cdn.example/m.mp3",
				Strategy:   domain.StrategyPage,
			}, nil
		},
	}
	router := newTestRouter(service)

	for _, path := range ExtractPaths {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			t.Run(method+" "+path, func(t *testing.T) {
				rec := serve(router, method, extractTarget(path, testVideoURL))

				require.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

				var body responses.SuccessResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.True(t, body.Status)
				assert.Equal(t, http.StatusOK, body.Code)
				assert.Equal(t, "user", body.Author.Name)
				assert.Equal(t, "123", body.Data.ID)
				assert.Equal(t, "https://cdn.example/v.mp4", body.Data.Video)
				assert.Equal(t, "https://cdn.example/m.mp3", body.Data.Music)
				assert.Equal(t, "TikTok", body.Data.Source)
				assert.NotContains(t, rec.Body.String(), "strategy")
			})
		}
	}

	assert.Len(t, service.urls, 4)
	for _, got := range service.urls {
		assert.Equal(t, testVideoURL, got)
	}
}

func TestExtractHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantError   string
	}{
		{
			name: "validation error",
			err: &coreerrors.ValidationError{
				Field:   "url",
				Message: extract.MessageInvalidURL,
				Err:     coreerrors.ErrInvalidURLFormat,
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: extract.MessageInvalidURL,
		},
		{
			name:        "not found",
			err:         &coreerrors.NotFoundError{Resource: "video", ID: testVideoURL},
			wantCode:    http.StatusNotFound,
			wantMessage: responses.MessageNotFound,
		},
		{
			name:        "upstream failure",
			err:         errors.New("fetch tiktok page: connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: responses.MessageInternalError,
			wantError:   "fetch tiktok page: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockExtractionService{
				extractFunc: func(context.Context, string) (*domain.ExtractionResult, error) {
					return nil, tt.err
				},
			})

			rec := serve(router, http.MethodGet, extractTarget("/api", testVideoURL))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestExtractHandler_PassesURLVerbatim(t *testing.T) {
	service := &mockExtractionService{}
	router := newTestRouter(service)

	serve(router, http.MethodGet, extractTarget("/api", " "+testVideoURL))

	require.Len(t, service.urls, 1)
	assert.Equal(t, " "+testVideoURL, service.urls[0])
}

func TestHealth(t *testing.T) {
	rec := serve(newTestRouter(&mockExtractionService{}), http.MethodGet, HealthPath)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// The tests below run the real extraction service behind the handler.

const tikTokPage = `<!DOCTYPE html><html><head>
<meta property="og:url" content="https://www.tiktok.com/@user/video/123">
<meta property="og:title" content="A dance video">
<meta property="og:image" content="https://cdn.example/thumb.jpg">
<meta property="og:author" content="user">
</head><body><script>window.__INIT_PROPS__ = {"videoData":{"playAddr":"https:\u002F\u002Fcdn.example\u002Fv.mp4","musicUrl":"https:\u002F\u002Fcdn.example\u002Fm.mp3"}}</script></body></html>`

const fallbackBase = "https://fallback.test/api/"

func newPipelineRouter(client *stubHTTPClient) *gin.Engine {
	service := extract.NewService(interfaces.Dependencies{HTTPClient: client}, extract.Options{
		FallbackURL: fallbackBase,
	})
	return newTestRouter(service)
}

func TestExtractPipeline_PageExample(t *testing.T) {
	client := &stubHTTPClient{
		respond: func(string) (interfaces.Response, error) {
			return &stubResponse{status: http.StatusOK, body: tikTokPage}, nil
		},
	}

	rec := serve(newPipelineRouter(client), http.MethodGet, extractTarget("/api", testVideoURL))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": true,
		"code": 200,
		"author": {"name": "user"},
		"data": {
			"id": "123",
			"title": "A dance video",
			"thumbnail": "https://cdn.example/thumb.jpg",
			"video": "https://cdn.example/v.mp4",
			"music": "https://cdn.example/m.mp3",
			"source": "TikTok"
		}
	}`, rec.Body.String())
	assert.Equal(t, 1, client.calls())
}

func TestExtractPipeline_ValidationMakesNoRequests(t *testing.T) {
	client := &stubHTTPClient{
		respond: func(string) (interfaces.Response, error) {
			return nil, errors.New("unexpected request")
		},
	}
	router := newPipelineRouter(client)

	rec := serve(router, http.MethodGet, "/api")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, extract.MessageMissingParameter, decodeError(t, rec).Message)

	for _, invalid := range []string{"https://example.com/video/123", " " + testVideoURL, "   "} {
		rec = serve(router, http.MethodGet, extractTarget("/api", invalid))
		assert.Equal(t, http.StatusBadRequest, rec.Code, invalid)
		assert.Equal(t, extract.MessageInvalidURL, decodeError(t, rec).Message, invalid)
	}

	assert.Equal(t, 0, client.calls())
}

func TestExtractPipeline_FallbackAndNotFound(t *testing.T) {
	emptyPage := strings.Replace(tikTokPage, "videoData", "somethingElse", 1)

	tests := []struct {
		name      string
		fallback  string
		wantCode  int
		wantVideo string
	}{
		{
			name:      "fallback provides video",
			fallback:  `{"data":{"play":"https://cdn.example/fb.mp4","music":"https://cdn.example/fb.mp3"}}`,
			wantCode:  http.StatusOK,
			wantVideo: "https://cdn.example/fb.mp4",
		},
		{
			name:     "fallback without data",
			fallback: `{"code":-1,"msg":"Url parsing is failed"}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "fallback data false",
			fallback: `{"code":-1,"data":false}`,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "fallback malformed json",
			fallback: `not json`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubHTTPClient{
				respond: func(requested string) (interfaces.Response, error) {
					if strings.HasPrefix(requested, fallbackBase) {
						return &stubResponse{status: http.StatusOK, body: tt.fallback}, nil
					}
					return &stubResponse{status: http.StatusOK, body: emptyPage}, nil
				},
			}

			rec := serve(newPipelineRouter(client), http.MethodGet, extractTarget("/api", testVideoURL))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, 2, client.calls())

			if tt.wantCode == http.StatusOK {
				var body responses.SuccessResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantVideo, body.Data.Video)
				return
			}

			body := decodeError(t, rec)
			if tt.wantCode == http.StatusInternalServerError {
				assert.NotEmpty(t, body.Error)
			} else {
				assert.Equal(t, responses.MessageNotFound, body.Message)
			}
		})
	}
}
