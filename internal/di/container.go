// Package di provides dependency injection configuration for the Palette server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/paletteapp/palette-server/internal/aggregate"
	"github.com/paletteapp/palette-server/internal/config"
	"github.com/paletteapp/palette-server/internal/di/providers"
	"github.com/paletteapp/palette-server/internal/logger"
	"github.com/paletteapp/palette-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// Cache layer
	do.Provide(injector, providers.ProvideStore)

	// Content providers
	do.Provide(injector, providers.ProvideProviderSet)

	// Aggregation and business services
	do.Provide(injector, providers.ProvideAggregator)
	do.Provide(injector, providers.ProvideMoodboardService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.ProviderSet](injector)
	_ = do.MustInvoke[*aggregate.Aggregator](injector)
	_ = do.MustInvoke[*service.MoodboardService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
