package logger

import (
	"io"

	"go.uber.org/fx"

	"coinscope/internal/config"
)

// Output is the writer the application logger is bound to
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)
