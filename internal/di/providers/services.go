package providers

import (
	"github.com/samber/do/v2"

	"github.com/paletteapp/palette-server/internal/aggregate"
	"github.com/paletteapp/palette-server/internal/config"
	"github.com/paletteapp/palette-server/internal/logger"
	"github.com/paletteapp/palette-server/internal/service"
)

// ProvideAggregator provides the multi-provider aggregator.
func ProvideAggregator(i do.Injector) (*aggregate.Aggregator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return aggregate.New(log.Logger, aggregate.Options{
		Pacing:      cfg.Aggregate.Pacing,
		CallTimeout: cfg.Aggregate.CallTimeout,
		MaxTerms:    cfg.Aggregate.MaxTerms,
	}), nil
}

// ProvideMoodboardService provides the moodboard service.
func ProvideMoodboardService(i do.Injector) (*service.MoodboardService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	agg := do.MustInvoke[*aggregate.Aggregator](i)
	providerSet := do.MustInvoke[*ProviderSet](i)

	return service.NewMoodboardService(agg, providerSet.Named, log.Logger), nil
}
