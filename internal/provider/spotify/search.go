package spotify

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paletteapp/palette-server/internal/content"
	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/provider"
)

// Kind reports the content kind this provider yields.
func (c *Client) Kind() content.Kind {
	return content.KindMusic
}

// SearchText searches the track catalog with a free-text query.
func (c *Client) SearchText(ctx context.Context, query string, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("searchTracks", query, provider.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(clampLimit(limit)))

	body, err := c.doRequest(ctx, "/v1/search", q)
	if err != nil {
		return nil, wrapError("searchTracks", query, err)
	}

	var resp rawTrackPage
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("searchTracks", query, fmt.Errorf("parse response: %w", err))
	}

	return convertTracks(resp.Tracks.Items), nil
}

// SearchParams requests recommendations seeded by the projected genres and
// numeric audio-feature targets.
func (c *Client) SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("recommendations", "", provider.ErrUnavailable)
	}

	genres := params.Music.Genres
	if len(genres) > maxSeedGenres {
		genres = genres[:maxSeedGenres]
	}
	if len(genres) == 0 {
		genres = []string{"pop"}
	}

	q := url.Values{}
	q.Set("seed_genres", strings.Join(genres, ","))
	q.Set("target_energy", formatFeature(params.Music.Targets.Energy))
	q.Set("target_valence", formatFeature(params.Music.Targets.Valence))
	q.Set("target_danceability", formatFeature(params.Music.Targets.Danceability))
	q.Set("target_acousticness", formatFeature(params.Music.Targets.Acousticness))
	q.Set("limit", strconv.Itoa(clampLimit(limit)))

	body, err := c.doRequest(ctx, "/v1/recommendations", q)
	if err != nil {
		return nil, wrapError("recommendations", "", err)
	}

	var resp rawRecommendations
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("recommendations", "", fmt.Errorf("parse response: %w", err))
	}

	return convertTracks(resp.Tracks), nil
}

// TopTerms returns the weighted music search terms, best first.
func (c *Client) TopTerms(params projection.Params) []string {
	return params.Music.SearchTerms
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultNumResults
	}
	if limit > maxNumResults {
		return maxNumResults
	}
	return limit
}

func formatFeature(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func convertTracks(tracks []rawTrack) []content.Item {
	items := make([]content.Item, 0, len(tracks))
	for i := range tracks {
		t := &tracks[i]

		var artist string
		if len(t.Artists) > 0 {
			artist = t.Artists[0].Name
		}
		var imageURL string
		var width, height int
		if len(t.Album.Images) > 0 {
			imageURL = t.Album.Images[0].URL
			width = t.Album.Images[0].Width
			height = t.Album.Images[0].Height
		}

		items = append(items, content.Item{
			Kind:       content.KindMusic,
			ID:         t.ID,
			Title:      t.Name,
			Artist:     artist,
			ImageURL:   imageURL,
			SourceURL:  t.ExternalURLs.Spotify,
			Popularity: t.Popularity,
			Explicit:   t.Explicit,
			Width:      width,
			Height:     height,
			ReleasedAt: parseReleaseDate(t.Album.ReleaseDate),
		})
	}
	return items
}

// parseReleaseDate handles the varying precision of album release dates
// (full date, year-month, or bare year).
func parseReleaseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
