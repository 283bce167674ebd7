package watchlist

import (
	"go.uber.org/fx"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/runtime"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Module provides the watchlist store and service
var Module = fx.Module("watchlist",
	fx.Provide(NewStore),
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, store Store, b bus.Bus, commands runtime.CommandBus, log logger.Logger) (Service, error) {
		svc, err := NewService(cfg, store, b, commands, log)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(svc.Close))

		return svc, nil
	}),
)
