package tmdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/provider"
)

// roundTripFunc stubs the transport so requests never leave the test.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, status int, body string, capture *http.Request) *Client {
	t.Helper()
	client := New(Config{APIKey: "test-key"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.http = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if capture != nil {
			*capture = *r
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})}
	return client
}

const searchFixture = `{
	"results": [
		{
			"id": 603,
			"title": "The Matrix",
			"overview": "A hacker learns the truth.",
			"poster_path": "/matrix.jpg",
			"vote_average": 8.2,
			"vote_count": 24000,
			"popularity": 85.3,
			"release_date": "1999-03-31",
			"adult": false
		},
		{
			"id": 604,
			"title": "The Matrix Reloaded",
			"overview": "The sequel.",
			"poster_path": "",
			"vote_average": 7.0,
			"vote_count": 11000,
			"popularity": 40.1,
			"release_date": "",
			"adult": false
		}
	]
}`

func TestSearchText_ParsesResults(t *testing.T) {
	var captured http.Request
	client := newTestClient(t, http.StatusOK, searchFixture, &captured)
	defer client.Close()

	items, err := client.SearchText(context.Background(), "matrix", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "603", items[0].ID)
	assert.Equal(t, "The Matrix", items[0].Title)
	assert.Equal(t, imageBaseURL+"/matrix.jpg", items[0].ImageURL)
	assert.Equal(t, 8.2, items[0].VoteAverage)
	assert.Equal(t, 1999, items[0].ReleasedAt.Year())

	// Missing poster and release date degrade to zero values.
	assert.Empty(t, items[1].ImageURL)
	assert.True(t, items[1].ReleasedAt.IsZero())

	assert.Equal(t, "/3/search/movie", captured.URL.Path)
	assert.Equal(t, "matrix", captured.URL.Query().Get("query"))
	assert.Equal(t, "false", captured.URL.Query().Get("include_adult"))
	assert.Equal(t, "test-key", captured.URL.Query().Get("api_key"))
}

func TestSearchText_TruncatesToLimit(t *testing.T) {
	client := newTestClient(t, http.StatusOK, searchFixture, nil)
	defer client.Close()

	items, err := client.SearchText(context.Background(), "matrix", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSearchText_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.status, "", nil)
			defer client.Close()

			_, err := client.SearchText(context.Background(), "matrix", 10)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var provErr *Error
			require.True(t, errors.As(err, &provErr))
			assert.Equal(t, "searchMovies", provErr.Op)
		})
	}
}

func TestSearchText_Unconfigured(t *testing.T) {
	client := New(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer client.Close()

	_, err := client.SearchText(context.Background(), "matrix", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, provider.ErrUnavailable))
}

func TestSearchParams_DiscoverQuery(t *testing.T) {
	var captured http.Request
	client := newTestClient(t, http.StatusOK, `{"results": []}`, &captured)
	defer client.Close()

	params := projection.Params{
		Film: projection.FilmParams{
			Genres:        []int{18, 35},
			YearRanges:    []projection.YearRange{{Min: 2000, Max: 2024}},
			VoteThreshold: 6.0,
		},
	}
	items, err := client.SearchParams(context.Background(), params, 10)
	require.NoError(t, err)
	assert.Empty(t, items)

	q := captured.URL.Query()
	assert.Equal(t, "/3/discover/movie", captured.URL.Path)
	assert.Equal(t, "popularity.desc", q.Get("sort_by"))
	assert.Equal(t, "18,35", q.Get("with_genres"))
	assert.Equal(t, "6.0", q.Get("vote_average.gte"))
	assert.Equal(t, "100", q.Get("vote_count.gte"))
	assert.Equal(t, "2000-01-01", q.Get("primary_release_date.gte"))
	assert.Equal(t, "2024-12-31", q.Get("primary_release_date.lte"))
}
