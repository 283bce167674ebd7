package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"coinscope/internal/app"
	"coinscope/internal/app/cli"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp contains the main application logic
func runApp(args []string) int {
	options, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(options.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	output, err := logOutput(cfg, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer output.Close()

	application := createApp(cfg, options, output)
	application.Run()

	return 0
}

// loadConfig wraps config.Load for easier testing
func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// logOutput keeps the terminal for the interactive view, logging to the configured file instead
func logOutput(cfg *config.Config, options *cli.Options) (io.WriteCloser, error) {
	if options.Type == cli.CommandView {
		return logger.OpenFile(cfg)
	}

	return nopCloser{os.Stderr}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, options *cli.Options, output io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, options),
		fx.Supply(logger.Output{Writer: output}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.TraceLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
