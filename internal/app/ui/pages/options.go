package pages

import (
	"time"

	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Options holds what every page of a subject needs
type Options struct {
	Coin  *config.Coin
	Delay time.Duration
	Log   logger.Logger
}

// NewRegistry builds the ordered tabs of the coin detail screen
func NewRegistry(opts Options) (tabs.Registry, error) {
	return tabs.NewRegistry(
		tabs.Descriptor{
			ID:      tabs.Overview,
			Label:   "Overview",
			Factory: func() tabs.Page { return NewOverview(opts) },
		},
		tabs.Descriptor{
			ID:      tabs.Markets,
			Label:   "Markets",
			Factory: func() tabs.Page { return NewMarkets(opts) },
		},
	)
}
