package unsplash

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
	return content.KindImage
}

// SearchText searches portrait photos with a free-text query.
func (c *Client) SearchText(ctx context.Context, query string, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("searchPhotos", query, provider.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("orientation", "portrait")
	q.Set("per_page", strconv.Itoa(clampLimit(limit)))

	body, err := c.doRequest(ctx, "/search/photos", q)
	if err != nil {
		return nil, wrapError("searchPhotos", query, err)
	}

	var resp rawSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("searchPhotos", query, fmt.Errorf("parse response: %w", err))
	}

	return convertPhotos(resp.Results), nil
}

// SearchParams joins the top projected image terms into one free-text query.
// Unsplash search has no parametric form beyond orientation.
func (c *Client) SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error) {
	terms := params.Image.SearchTerms
	if len(terms) == 0 {
		return []content.Item{}, nil
	}
	if len(terms) > 3 {
		terms = terms[:3]
	}
	return c.SearchText(ctx, strings.Join(terms, " "), limit)
}

// TopTerms returns the weighted image search terms, best first.
func (c *Client) TopTerms(params projection.Params) []string {
	return params.Image.SearchTerms
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

func convertPhotos(photos []rawPhoto) []content.Item {
	items := make([]content.Item, 0, len(photos))
	for i := range photos {
		p := &photos[i]

		title := p.Description
		if title == "" {
			title = p.AltDescription
		}
		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			if t.Title != "" {
				tags = append(tags, t.Title)
			}
		}
		var created time.Time
		if p.CreatedAt != "" {
			created, _ = time.Parse(time.RFC3339, p.CreatedAt)
		}

		items = append(items, content.Item{
			Kind:        content.KindImage,
			ID:          p.ID,
			Title:       title,
			Attribution: p.User.Name,
			ImageURL:    p.URLs.Regular,
			SourceURL:   p.Links.HTML,
			Tags:        tags,
			Likes:       p.Likes,
			Width:       p.Width,
			Height:      p.Height,
			ReleasedAt:  created,
		})
	}
	return items
}
