package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPPoster implements stache.Poster with a single POST and no retries.
type HTTPPoster struct {
	client *http.Client
}

// NewHTTPPoster creates a poster. A zero timeout means none.
func NewHTTPPoster(timeout time.Duration) *HTTPPoster {
	return &HTTPPoster{client: &http.Client{Timeout: timeout}}
}

// Post sends body to endpoint with a bearer token. Any response, whatever
// its status, is returned without error.
func (p *HTTPPoster) Post(ctx context.Context, endpoint, token string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
