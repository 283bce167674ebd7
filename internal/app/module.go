package app

import (
	"go.uber.org/fx"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/cli"
	"coinscope/internal/app/report"
	"coinscope/internal/app/runtime"
	"coinscope/internal/app/ui/wire"
	"coinscope/internal/app/watchlist"
	"coinscope/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	bus.Module,
	runtime.Module,
	report.Module,
	watchlist.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
