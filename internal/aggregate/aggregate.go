// Package aggregate orchestrates multi-strategy, multi-provider content
// gathering: concurrent strategy fan-out per provider, circuit breaking,
// dedup, filtering, ranking and truncation.
package aggregate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"

	"github.com/paletteapp/palette-server/internal/content"
	"github.com/paletteapp/palette-server/internal/metrics"
	"github.com/paletteapp/palette-server/internal/projection"
	"github.com/paletteapp/palette-server/internal/provider"
)

const (
	defaultPacing      = 200 * time.Millisecond
	defaultCallTimeout = 10 * time.Second
	defaultMaxTerms    = 3
	defaultBreakerTrip = 5
	defaultLimit       = 20
)

// Options tune the aggregator. Zero values fall back to defaults.
type Options struct {
	// Pacing is the delay between sequential term queries to one provider.
	Pacing time.Duration

	// CallTimeout bounds each individual provider call.
	CallTimeout time.Duration

	// MaxTerms caps how many top search terms strategy C queries.
	MaxTerms int

	// BreakerTrip is the consecutive-failure count that opens a provider's
	// circuit breaker.
	BreakerTrip uint32
}

// Request carries one aggregation request.
type Request struct {
	Params projection.Params
	Vibe   string
	Limit  int

	// ProductsOnly applies the product-relevance heuristic to image and
	// blog results; StrictProducts tightens it.
	ProductsOnly   bool
	StrictProducts bool
}

// Named pairs a provider with its stable name for breakers, caching keys and
// metric labels.
type Named struct {
	Name     string
	Searcher provider.Searcher
}

// Aggregator fans out search strategies across providers. Safe for
// concurrent use.
type Aggregator struct {
	logger *slog.Logger
	opts   Options

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]content.Item]
}

// New creates an Aggregator.
func New(logger *slog.Logger, opts Options) *Aggregator {
	if opts.Pacing <= 0 {
		opts.Pacing = defaultPacing
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = defaultCallTimeout
	}
	if opts.MaxTerms <= 0 {
		opts.MaxTerms = defaultMaxTerms
	}
	if opts.BreakerTrip == 0 {
		opts.BreakerTrip = defaultBreakerTrip
	}
	return &Aggregator{
		logger:   logger,
		opts:     opts,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]content.Item]),
	}
}

// Aggregate runs the three search strategies against one provider, merges
// their results in strategy order (parametric, direct vibe, top terms),
// deduplicates by identity first-wins, filters, ranks and truncates.
//
// Every strategy call is independently fault-tolerant: a failure or timeout
// contributes zero items and never aborts the others. An all-empty outcome
// is an empty slice, not an error.
func (a *Aggregator) Aggregate(ctx context.Context, p Named, req Request) []content.Item {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var wg sync.WaitGroup
	var fromParams, fromVibe, fromTerms []content.Item

	wg.Add(3)
	go func() {
		defer wg.Done()
		fromParams = a.call(ctx, p.Name, "params", func(cctx context.Context) ([]content.Item, error) {
			return p.Searcher.SearchParams(cctx, req.Params, limit)
		})
	}()
	go func() {
		defer wg.Done()
		if req.Vibe == "" {
			return
		}
		fromVibe = a.call(ctx, p.Name, "vibe", func(cctx context.Context) ([]content.Item, error) {
			return p.Searcher.SearchText(cctx, req.Vibe, limit)
		})
	}()
	go func() {
		defer wg.Done()
		fromTerms = a.searchTopTerms(ctx, p, req.Params, limit)
	}()
	wg.Wait()

	merged := make([]content.Item, 0, len(fromParams)+len(fromVibe)+len(fromTerms))
	merged = append(merged, fromParams...)
	merged = append(merged, fromVibe...)
	merged = append(merged, fromTerms...)

	merged = content.Dedupe(merged)
	merged = content.Filter(merged, content.FilterOptions{
		VoteThreshold:  req.Params.Film.VoteThreshold,
		ProductsOnly:   req.ProductsOnly,
		StrictProducts: req.StrictProducts,
	})
	merged = content.Rank(merged, content.RankOptions{Targets: audioTargets(req.Params)})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// AggregateAll runs Aggregate for every provider concurrently and returns
// the per-kind result sets. Providers contribute independently; there is no
// cross-provider ordering guarantee and an all-empty result is valid.
func (a *Aggregator) AggregateAll(ctx context.Context, providers []Named, req Request) map[content.Kind][]content.Item {
	results := make([]struct {
		kind  content.Kind
		items []content.Item
	}, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i].kind = p.Searcher.Kind()
			results[i].items = a.Aggregate(ctx, p, req)
		}()
	}
	wg.Wait()

	byKind := make(map[content.Kind][]content.Item, len(providers))
	for _, r := range results {
		byKind[r.kind] = append(byKind[r.kind], r.items...)
	}
	return byKind
}

// searchTopTerms issues one text query per top weighted term, sequentially
// with a pacing delay, so a single provider is not hammered in a burst.
func (a *Aggregator) searchTopTerms(ctx context.Context, p Named, params projection.Params, limit int) []content.Item {
	terms := p.Searcher.TopTerms(params)
	if len(terms) > a.opts.MaxTerms {
		terms = terms[:a.opts.MaxTerms]
	}

	var items []content.Item
	for i, term := range terms {
		if i > 0 {
			select {
			case <-time.After(a.opts.Pacing):
			case <-ctx.Done():
				return items
			}
		}
		items = append(items, a.call(ctx, p.Name, "term", func(cctx context.Context) ([]content.Item, error) {
			return p.Searcher.SearchText(cctx, term, limit)
		})...)
	}
	return items
}

// call runs one provider call through the provider's circuit breaker with a
// per-call timeout. Failures are logged and counted, and contribute zero
// items.
func (a *Aggregator) call(ctx context.Context, name, op string, fn func(context.Context) ([]content.Item, error)) []content.Item {
	cctx, cancel := context.WithTimeout(ctx, a.opts.CallTimeout)
	defer cancel()

	metrics.ProviderCalls.WithLabelValues(name, op).Inc()
	timer := prometheus.NewTimer(metrics.ProviderDuration.WithLabelValues(name))
	items, err := a.breaker(name).Execute(func() ([]content.Item, error) {
		return fn(cctx)
	})
	timer.ObserveDuration()

	if err != nil {
		metrics.ProviderFailures.WithLabelValues(name, op).Inc()
		switch {
		case errors.Is(err, provider.ErrUnavailable):
			a.logger.Debug("provider not configured", "provider", name, "op", op)
		case errors.Is(err, gobreaker.ErrOpenState):
			a.logger.Debug("provider breaker open", "provider", name, "op", op)
		default:
			a.logger.Warn("provider call failed", "provider", name, "op", op, "error", err)
		}
		return nil
	}
	return items
}

func (a *Aggregator) breaker(name string) *gobreaker.CircuitBreaker[[]content.Item] {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cb, ok := a.breakers[name]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[[]content.Item](gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= a.opts.BreakerTrip
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			if to == gobreaker.StateOpen {
				metrics.BreakerOpens.WithLabelValues(name).Inc()
			}
		},
		// A provider without credentials is a configuration gap, not a
		// health signal; do not trip the breaker on it.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, provider.ErrUnavailable)
		},
	})
	a.breakers[name] = cb
	return cb
}

func audioTargets(params projection.Params) map[string]float64 {
	return map[string]float64{
		"energy":       params.Music.Targets.Energy,
		"valence":      params.Music.Targets.Valence,
		"danceability": params.Music.Targets.Danceability,
		"acousticness": params.Music.Targets.Acousticness,
	}
}
