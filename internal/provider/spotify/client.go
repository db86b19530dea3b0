// Package spotify is a rate-limited Spotify Web API adapter yielding music
// items.
package spotify

import (
	"context"
	"encoding/base64"
	"fmt"
	"github.com/go-json-experiment/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/paletteapp/palette-server/internal/ratelimit"
)

const (
	// Rate limit: 5 requests per second, burst of 10
	defaultRPS   = 5.0
	defaultBurst = 10

	// HTTP client settings
	defaultTimeout = 15 * time.Second

	// API settings
	apiHost           = "api.spotify.com"
	tokenURL          = "https://accounts.spotify.com/api/token"
	defaultNumResults = 20
	maxNumResults     = 50
	maxSeedGenres     = 5
)

// Config carries the client-credentials pair for the Spotify Web API.
type Config struct {
	ClientID     string
	ClientSecret string
}

// Client is a rate-limited Spotify API client using the client-credentials
// flow. The access token is fetched lazily and refreshed before expiry.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
	config  Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a new Spotify client.
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

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.config.ClientID != "" && c.config.ClientSecret != ""
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// token returns a valid access token, refreshing it when absent or within a
// minute of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.config.ClientID + ":" + c.config.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)

	c.logger.Debug("spotify token refreshed", "expires_in", tok.ExpiresIn)
	return c.accessToken, nil
}

// doRequest executes an authenticated GET with rate limiting.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx, "api"); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
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
	req.Header.Set("Authorization", "Bearer "+token)

	c.logger.Debug("spotify request", "path", path)

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

type rawTrackPage struct {
	Tracks struct {
		Items []rawTrack `json:"items"`
	} `json:"tracks"`
}

type rawRecommendations struct {
	Tracks []rawTrack `json:"tracks"`
}

type rawTrack struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Popularity   float64     `json:"popularity"`
	Explicit     bool        `json:"explicit"`
	Artists      []rawArtist `json:"artists"`
	Album        rawAlbum    `json:"album"`
	ExternalURLs rawLinks    `json:"external_urls"`
}

type rawArtist struct {
	Name string `json:"name"`
}

type rawAlbum struct {
	Name        string     `json:"name"`
	ReleaseDate string     `json:"release_date"`
	Images      []rawImage `json:"images"`
}

type rawImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type rawLinks struct {
	Spotify string `json:"spotify"`
}
