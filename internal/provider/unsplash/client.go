// Package unsplash is a rate-limited Unsplash API adapter yielding image
// items.
package unsplash

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/paletteapp/palette-server/internal/ratelimit"
)

const (
	// Rate limit: 1 request per second, burst of 3 (demo apps get 50/hour)
	defaultRPS   = 1.0
	defaultBurst = 3

	// HTTP client settings
	defaultTimeout = 15 * time.Second

	// API settings
	apiHost           = "api.unsplash.com"
	defaultNumResults = 20
	maxNumResults     = 30
)

// Config carries the Unsplash access key.
type Config struct {
	AccessKey string
}

// Client is a rate-limited Unsplash API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	config  Config
}

// New creates a new Unsplash client.
func New(config Config, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		config:  config,
	}
}

// Configured reports whether an access key is present.
func (c *Client) Configured() bool {
	return c.config.AccessKey != ""
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// doRequest executes an HTTP request with rate limiting.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx, "api"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := url.URL{
		Scheme:   "https",
		Host:     apiHost,
		Path:     path,
		RawQuery: query.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("Authorization", "Client-ID "+c.config.AccessKey)

	c.logger.Debug("unsplash request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusBadRequest:
		return nil, ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}

// Raw API response types (internal)

type rawSearchResponse struct {
	Results []rawPhoto `json:"results"`
}

type rawPhoto struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	AltDescription string   `json:"alt_description"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Likes          int      `json:"likes"`
	CreatedAt      string   `json:"created_at"`
	URLs           rawURLs  `json:"urls"`
	Links          rawLinks `json:"links"`
	User           rawUser  `json:"user"`
	Tags           []rawTag `json:"tags"`
}

type rawURLs struct {
	Regular string `json:"regular"`
}

type rawLinks struct {
	HTML string `json:"html"`
}

type rawUser struct {
	Name string `json:"name"`
}

type rawTag struct {
	Title string `json:"title"`
}
