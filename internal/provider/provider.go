// Package provider defines the capability shape every external content
// source implements. Concrete adapters live in subpackages (spotify, tmdb,
// tumblr, unsplash); the aggregator only sees this interface.
package provider

import (
	"context"
	"errors"

	"github.com/paletteapp/palette-server/internal/content"
	"github.com/paletteapp/palette-server/internal/projection"
)

// ErrUnavailable signals a provider that cannot serve requests, typically
// because its credentials are not configured. The aggregator treats such a
// provider as contributing zero items.
var ErrUnavailable = errors.New("provider: unavailable")

// Searcher is the uniform search capability of one content provider.
// Implementations never assume a call succeeds: any method may return an
// error, and a nil-error empty result is a valid outcome.
type Searcher interface {
	// Kind reports the content kind this provider yields.
	Kind() content.Kind

	// SearchText runs a free-text query.
	SearchText(ctx context.Context, query string, limit int) ([]content.Item, error)

	// SearchParams runs a parametric query from projected parameters.
	SearchParams(ctx context.Context, params projection.Params, limit int) ([]content.Item, error)

	// TopTerms extracts the provider's weighted search terms from projected
	// parameters, best first. Callers cap how many they actually query.
	TopTerms(params projection.Params) []string
}
