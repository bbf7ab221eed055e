package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/Tsiqara/WeatherApp/models"
)

// requestTimeout is the fixed per-request deadline. A request that has not
// resolved by then surfaces as a transport failure.
const requestTimeout = 20 * time.Second

// Response is the raw outcome of a completed HTTP round trip. A transport
// failure never produces a Response; everything that does reach HTTP status
// handling is delivered here and mapped by the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	httpClient *http.Client
	rateLimit  models.RateLimitSettings
	limiter    *time.Ticker
}

func NewClient(rl models.RateLimitSettings) *Client {
	interval := rl.PerDuration / time.Duration(rl.MaxRequests)

	ticker := time.NewTicker(interval)

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		rateLimit:  rl,
		limiter:    ticker,
	}
}

// Do performs a single GET. There are no retries: the error return means the
// transport failed; any HTTP status, success or not, comes back as a Response.
func (c *Client) Do(ctx context.Context, url string, headers map[string]string) (*Response, error) {

	<-c.limiter.C

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	logger.Info("Making request to %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("HTTP request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
