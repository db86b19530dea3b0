package tumblr

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"net/url"
	"strconv"
	"time"

	"github.com/paletteapp/palette-server/internal/content"
	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/provider"
)

// Kind reports the content kind this provider yields.
func (c *Client) Kind() content.Kind {
	return content.KindBlog
}

// SearchText fetches photo posts for a single tag.
func (c *Client) SearchText(ctx context.Context, query string, limit int) ([]content.Item, error) {
	if !c.Configured() {
		return nil, wrapError("tagged", query, provider.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("tag", query)
	q.Set("limit", strconv.Itoa(clampLimit(limit)))

	body, err := c.doRequest(ctx, "/v2/tagged", q)
	if err != nil {
		return nil, wrapError("tagged", query, err)
	}

	var resp rawTaggedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("tagged", query, fmt.Errorf("parse response: %w", err))
	}

	return convertPosts(resp.Response), nil
}

// SearchParams queries the highest-weighted primary tag. Tumblr's tagged
// endpoint has no parametric form, so the projected tags stand in for one.
func (c *Client) SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error) {
	tags := params.Blog.PrimaryTags
	if len(tags) == 0 {
		return []content.Item{}, nil
	}
	return c.SearchText(ctx, tags[0], limit)
}

// TopTerms returns the weighted blog tags, primary before secondary.
func (c *Client) TopTerms(params projection.Params) []string {
	terms := make([]string, 0, len(params.Blog.PrimaryTags)+len(params.Blog.SecondaryTags))
	terms = append(terms, params.Blog.PrimaryTags...)
	terms = append(terms, params.Blog.SecondaryTags...)
	return terms
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > defaultNumResults {
		return defaultNumResults
	}
	return limit
}

// convertPosts keeps photo posts only; text posts have no image to pin to a
// board.
func convertPosts(posts []rawPost) []content.Item {
	items := make([]content.Item, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if p.Type != "photo" || len(p.Photos) == 0 {
			continue
		}
		photo := p.Photos[0].OriginalSize

		items = append(items, content.Item{
			Kind:        content.KindBlog,
			ID:          p.IDString,
			Title:       p.Summary,
			Attribution: p.BlogName,
			ImageURL:    photo.URL,
			SourceURL:   p.PostURL,
			Caption:     stripHTML(p.Caption),
			Tags:        p.Tags,
			Likes:       p.NoteCount,
			Width:       photo.Width,
			Height:      photo.Height,
			ReleasedAt:  time.Unix(p.Timestamp, 0).UTC(),
		})
	}
	return items
}
