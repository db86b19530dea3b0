package provider

import (
	"context"
	"log/slog"

	"github.com/paletteapp/palette-server/internal/content"
	"github.com/paletteapp/palette-server/internal/metrics"
	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/store"
)

// Cached decorates a Searcher with a Badger-backed result cache for text
// queries, keyed by provider, query and limit so requests asking for more
// items than a previous fetch are not served its smaller set. Parametric
// queries bypass the cache: their parameter bundles vary per request and
// rarely repeat.
type Cached struct {
	inner  Searcher
	name   string
	store  *store.Store
	logger *slog.Logger
}

// NewCached wraps the searcher. name keys the cache namespace and metric
// labels.
func NewCached(inner Searcher, name string, st *store.Store, logger *slog.Logger) *Cached {
	return &Cached{
		inner:  inner,
		name:   name,
		store:  st,
		logger: logger,
	}
}

// Kind reports the inner provider's content kind.
func (c *Cached) Kind() content.Kind {
	return c.inner.Kind()
}

// SearchText serves the query from cache when possible, falling through to
// the inner searcher and caching its results on success. Cache read/write
// failures are logged and treated as misses; they never fail the search.
func (c *Cached) SearchText(ctx context.Context, query string, limit int) ([]content.Item, error) {
	cached, err := c.store.GetCachedSearch(ctx, c.name, query, limit)
	if err != nil {
		c.logger.Warn("search cache read failed", "provider", c.name, "error", err)
	}
	if cached != nil {
		metrics.CacheHits.WithLabelValues(c.name).Inc()
		return cached.Items, nil
	}
	metrics.CacheMisses.WithLabelValues(c.name).Inc()

	items, err := c.inner.SearchText(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if err := c.store.SetCachedSearch(ctx, c.name, query, limit, items); err != nil {
		c.logger.Warn("search cache write failed", "provider", c.name, "error", err)
	}
	return items, nil
}

// SearchParams delegates to the inner searcher.
func (c *Cached) SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error) {
	return c.inner.SearchParams(ctx, params, limit)
}

// TopTerms delegates to the inner searcher.
func (c *Cached) TopTerms(params projection.Params) []string {
	return c.inner.TopTerms(params)
}
