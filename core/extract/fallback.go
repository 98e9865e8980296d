// ABOUTME: Client for the third-party aggregation API used when page extraction fails
// ABOUTME: Sends the original TikTok URL and reads data.play and data.music

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tiktok-downloader-api/core/errors"
	"tiktok-downloader-api/core/interfaces"
)

// DefaultFallbackURL is the aggregation API queried when no base URL is configured
const DefaultFallbackURL = "https://www.tikwm.com/api/"

const fallbackAPIName = "tikwm"

// FallbackResult holds the URLs returned by the aggregation API.
// Found is false when data is missing or not an object (false, "", 0, [] or null).
type FallbackResult struct {
	Play  string
	Music string
	Found bool
}

type fallbackResponse struct {
	Data json.RawMessage `json:"data"`
}

type fallbackData struct {
	Play  string `json:"play"`
	Music string `json:"music"`
}

// FallbackClient queries the aggregation API
type FallbackClient struct {
	httpClient interfaces.HTTPClient
	baseURL    string
}

// NewFallbackClient creates a fallback client against baseURL
func NewFallbackClient(httpClient interfaces.HTTPClient, baseURL string) *FallbackClient {
	if baseURL == "" {
		baseURL = DefaultFallbackURL
	}
	return &FallbackClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// Lookup asks the aggregation API for the video and music URLs of videoPageURL
func (c *FallbackClient) Lookup(ctx context.Context, videoPageURL string) (*FallbackResult, error) {
	endpoint, err := c.endpoint(videoPageURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, endpoint, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, errors.WrapError(err, "fallback request")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        fallbackAPIName,
		}
	}

	var payload fallbackResponse
	if err := json.NewDecoder(resp.Body()).Decode(&payload); err != nil {
		return nil, errors.WrapError(err, "decode fallback response")
	}

	raw := bytes.TrimSpace(payload.Data)
	if len(raw) == 0 || raw[0] != '{' {
		return &FallbackResult{}, nil
	}

	var data fallbackData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapError(err, "decode fallback data")
	}

	return &FallbackResult{
		Play:  data.Play,
		Music: data.Music,
		Found: true,
	}, nil
}

func (c *FallbackClient) endpoint(videoPageURL string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid fallback base url %q: %w", c.baseURL, err)
	}
	query := u.Query()
	query.Set("url", videoPageURL)
	u.RawQuery = query.Encode()
	return u.String(), nil
}
