package report

import (
	"go.uber.org/fx"

	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Module provides the error reporter and flushes it on shutdown
var Module = fx.Module("report",
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (Reporter, error) {
		r, err := New(cfg, log)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(func() {
			r.Flush(config.ReportTimeout)
		}))

		return r, nil
	}),
)
