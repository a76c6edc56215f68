// Package youtube provides a thin client for the YouTube Data API v3 search
// endpoint. Responses are passed through to callers verbatim.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const searchEndpoint = "https://www.googleapis.com/youtube/v3/search"

// Client performs keyword searches against the YouTube Data API.
type Client interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

type ClientImpl struct {
	apiKey     string
	maxResults int
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, maxResults int) *ClientImpl {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &ClientImpl{
		apiKey:     apiKey,
		maxResults: maxResults,
		baseURL:    searchEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search runs a video search and returns the upstream JSON body unmodified.
func (c *ClientImpl) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", c.maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read youtube response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned status %d", resp.StatusCode)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("youtube search returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
