// Package tmdb is a rate-limited TMDb API adapter yielding film items.
package tmdb

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
	// Rate limit: 4 requests per second, burst of 8
	defaultRPS   = 4.0
	defaultBurst = 8

	// HTTP client settings
	defaultTimeout = 15 * time.Second

	// API settings
	apiHost           = "api.themoviedb.org"
	imageBaseURL      = "https://image.tmdb.org/t/p/w500"
	defaultNumResults = 20
)

// Config carries the TMDb API key.
type Config struct {
	APIKey string
}

// Client is a rate-limited TMDb API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	config  Config
}

// New creates a new TMDb client.
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

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
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

	query.Set("api_key", c.config.APIKey)
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

	c.logger.Debug("tmdb request", "path", path)

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
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}

// Raw API response types (internal)

type rawMoviePage struct {
	Results []rawMovie `json:"results"`
}

type rawMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date"`
	Adult       bool    `json:"adult"`
}
