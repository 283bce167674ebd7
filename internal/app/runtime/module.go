package runtime

import (
	"go.uber.org/fx"

	"coinscope/internal/config"
)

// Module provides runtime dependencies for dependency injection
var Module = fx.Module("runtime",
	fx.Provide(
		func(lc fx.Lifecycle) CommandBus {
			cb := NewCommandBus(config.CommandsBufferSize)

			lc.Append(fx.StopHook(cb.Close))

			return cb
		},
	),
)
