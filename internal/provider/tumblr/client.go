// Package tumblr is a rate-limited Tumblr API adapter yielding blog photo
// items.
package tumblr

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
	// Rate limit: 2 requests per second, burst of 5
	defaultRPS   = 2.0
	defaultBurst = 5

	// HTTP client settings
	defaultTimeout = 15 * time.Second

	// API settings
	apiHost           = "api.tumblr.com"
	defaultNumResults = 20
)

// Config carries the Tumblr consumer API key.
type Config struct {
	APIKey string
}

// Client is a rate-limited Tumblr API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	config  Config
}

// New creates a new Tumblr client.
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

	c.logger.Debug("tumblr request", "path", path)

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

type rawTaggedResponse struct {
	Response []rawPost `json:"response"`
}

type rawPost struct {
	Type      string     `json:"type"`
	IDString  string     `json:"id_string"`
	BlogName  string     `json:"blog_name"`
	PostURL   string     `json:"post_url"`
	Summary   string     `json:"summary"`
	Caption   string     `json:"caption"`
	Tags      []string   `json:"tags"`
	Timestamp int64      `json:"timestamp"`
	NoteCount int        `json:"note_count"`
	Photos    []rawPhoto `json:"photos"`
}

type rawPhoto struct {
	OriginalSize rawPhotoSize `json:"original_size"`
}

type rawPhotoSize struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
