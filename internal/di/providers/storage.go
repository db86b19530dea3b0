package providers

import (
	"github.com/samber/do/v2"

	"github.com/paletteapp/palette-server/internal/config"
	"github.com/paletteapp/palette-server/internal/logger"
	"github.com/paletteapp/palette-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the provider-result cache store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(cfg.Cache.BasePath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Cache initialized", "path", cfg.Cache.BasePath)

	return &StoreHandle{Store: db}, nil
}
