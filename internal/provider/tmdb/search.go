package tmdb

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
	return content.KindFilm
}

// SearchText searches movies with a free-text query.
func (c *Client) SearchText(ctx context.Context, query string, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("searchMovies", query, provider.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")

	body, err := c.doRequest(ctx, "/3/search/movie", q)
	if err != nil {
		return nil, wrapError("searchMovies", query, err)
	}

	var resp rawMoviePage
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("searchMovies", query, fmt.Errorf("parse response: %w", err))
	}

	return convertMovies(resp.Results, limit), nil
}

// SearchParams discovers movies by the projected genres, year window and
// vote threshold, most popular first.
func (c *Client) SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("discoverMovies", "", provider.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("sort_by", "popularity.desc")
	q.Set("include_adult", "false")
	q.Set("vote_count.gte", "100")

	if len(params.Film.Genres) > 0 {
		genres := make([]string, 0, len(params.Film.Genres))
		for _, g := range params.Film.Genres {
			genres = append(genres, strconv.Itoa(g))
		}
		q.Set("with_genres", strings.Join(genres, ","))
	}
	if params.Film.VoteThreshold > 0 {
		q.Set("vote_average.gte", strconv.FormatFloat(params.Film.VoteThreshold, 'f', 1, 64))
	}
	if len(params.Film.YearRanges) > 0 {
		yr := params.Film.YearRanges[0]
		q.Set("primary_release_date.gte", fmt.Sprintf("%d-01-01", yr.Min))
		q.Set("primary_release_date.lte", fmt.Sprintf("%d-12-31", yr.Max))
	}

	body, err := c.doRequest(ctx, "/3/discover/movie", q)
	if err != nil {
		return nil, wrapError("discoverMovies", "", err)
	}

	var resp rawMoviePage
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("discoverMovies", "", fmt.Errorf("parse response: %w", err))
	}

	return convertMovies(resp.Results, limit), nil
}

// TopTerms returns the weighted film keywords, best first.
func (c *Client) TopTerms(params projection.Params) []string {
	return params.Film.Keywords
}

func convertMovies(movies []rawMovie, limit int) []content.Item {
	if limit <= 0 {
		limit = defaultNumResults
	}
	if len(movies) > limit {
		movies = movies[:limit]
	}

	items := make([]content.Item, 0, len(movies))
	for i := range movies {
		m := &movies[i]

		var posterURL string
		if m.PosterPath != "" {
			posterURL = imageBaseURL + m.PosterPath
		}
		var released time.Time
		if m.ReleaseDate != "" {
			released, _ = time.Parse("2006-01-02", m.ReleaseDate)
		}

		items = append(items, content.Item{
			Kind:        content.KindFilm,
			ID:          strconv.FormatInt(m.ID, 10),
			Title:       m.Title,
			Caption:     m.Overview,
			ImageURL:    posterURL,
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
			Popularity:  m.Popularity,
			Adult:       m.Adult,
			ReleasedAt:  released,
		})
	}
	return items
}
