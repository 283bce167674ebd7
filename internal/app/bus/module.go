package bus

import (
	"go.uber.org/fx"

	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) Bus {
		b := New(cfg, log.WithComponent("BUS"))

		lc.Append(fx.StopHook(b.Close))

		return b
	}),
)
