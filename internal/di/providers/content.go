package providers

import (
	"github.com/samber/do/v2"

	"github.com/paletteapp/palette-server/internal/aggregate"
	"github.com/paletteapp/palette-server/internal/config"
	"github.com/paletteapp/palette-server/internal/logger"
	"github.com/paletteapp/palette-server/internal/provider"
	"github.com/paletteapp/palette-server/internal/provider/spotify"
	"github.com/paletteapp/palette-server/internal/provider/tmdb"
	"github.com/paletteapp/palette-server/internal/provider/tumblr"
	"github.com/paletteapp/palette-server/internal/provider/unsplash"
)

// ProviderSet holds every content provider, wrapped with the result cache,
// plus the underlying clients for lifecycle management. Unconfigured
// providers stay in the set; they report unavailable per call and the
// aggregator skips them.
type ProviderSet struct {
	Named []aggregate.Named

	spotify  *spotify.Client
	tmdb     *tmdb.Client
	tumblr   *tumblr.Client
	unsplash *unsplash.Client
}

// Shutdown implements do.Shutdownable.
func (s *ProviderSet) Shutdown() error {
	s.spotify.Close()
	s.tmdb.Close()
	s.tumblr.Close()
	s.unsplash.Close()
	return nil
}

// ProvideProviderSet provides the cached content providers.
func ProvideProviderSet(i do.Injector) (*ProviderSet, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	set := &ProviderSet{
		spotify: spotify.New(spotify.Config{
			ClientID:     cfg.Providers.SpotifyClientID,
			ClientSecret: cfg.Providers.SpotifyClientSecret,
		}, log.Logger),
		tmdb: tmdb.New(tmdb.Config{
			APIKey: cfg.Providers.TMDBAPIKey,
		}, log.Logger),
		tumblr: tumblr.New(tumblr.Config{
			APIKey: cfg.Providers.TumblrAPIKey,
		}, log.Logger),
		unsplash: unsplash.New(unsplash.Config{
			AccessKey: cfg.Providers.UnsplashAccessKey,
		}, log.Logger),
	}

	clients := []struct {
		name       string
		searcher   provider.Searcher
		configured bool
	}{
		{"spotify", set.spotify, set.spotify.Configured()},
		{"tmdb", set.tmdb, set.tmdb.Configured()},
		{"tumblr", set.tumblr, set.tumblr.Configured()},
		{"unsplash", set.unsplash, set.unsplash.Configured()},
	}

	for _, c := range clients {
		cached := provider.NewCached(c.searcher, c.name, storeHandle.Store, log.Logger)
		set.Named = append(set.Named, aggregate.Named{Name: c.name, Searcher: cached})
		if c.configured {
			log.Info("Content provider enabled", "provider", c.name)
		} else {
			log.Warn("Content provider has no credentials, it will contribute no results", "provider", c.name)
		}
	}

	return set, nil
}
