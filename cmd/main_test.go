package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"coinscope/internal/app/cli"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Catalog)
}

func Test_LogOutput(t *testing.T) {
	t.Run("View logs to the configured file", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "coinscope.log")

		output, err := logOutput(cfg, &cli.Options{Type: cli.CommandView})
		require.NoError(t, err)

		_, err = output.Write([]byte("line\n"))
		require.NoError(t, err)
		require.NoError(t, output.Close())

		data, err := os.ReadFile(cfg.Logging.File)
		require.NoError(t, err)
		assert.Equal(t, "line\n", string(data))
	})

	t.Run("Other commands log to stderr", func(t *testing.T) {
		output, err := logOutput(config.DefaultConfig(), &cli.Options{Type: cli.CommandList})
		require.NoError(t, err)

		assert.Equal(t, nopCloser{os.Stderr}, output)
		assert.NoError(t, output.Close())
	})
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		options *cli.Options
	}{
		{name: "Creates app for the interactive view", level: logger.InfoLevel, options: &cli.Options{Type: cli.CommandView, Subject: "bitcoin"}},
		{name: "Creates app for list with trace logging", level: logger.TraceLevel, options: &cli.Options{Type: cli.CommandList}},
		{name: "Creates app for version", level: logger.ErrorLevel, options: &cli.Options{Type: cli.CommandVersion}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Catalog = config.DemoCatalog()
			cfg.ApplyDefaults()
			cfg.Logging.Level = tt.level
			cfg.Watchlist.Path = filepath.Join(t.TempDir(), "watchlist.yaml")

			app := createApp(cfg, tt.options, &bytes.Buffer{})
			assert.NotNil(t, app)
			assert.NoError(t, app.Err())
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          string
		expectedType   interface{}
		expectedLogger interface{}
	}{
		{name: "Trace level returns console logger", level: logger.TraceLevel, expectedType: &fxevent.ConsoleLogger{}},
		{name: "Debug level returns nop logger", level: logger.DebugLevel, expectedLogger: fxevent.NopLogger},
		{name: "Info level returns nop logger", level: logger.InfoLevel, expectedLogger: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			result := createFxLogger(cfg)()
			assert.NotNil(t, result)

			if tt.expectedType != nil {
				assert.IsType(t, tt.expectedType, result)
			}

			if tt.expectedLogger != nil {
				assert.Equal(t, tt.expectedLogger, result)
			}
		})
	}
}

func Test_RunApp_InvalidArgs(t *testing.T) {
	assert.Equal(t, 1, runApp([]string{"view"}))
}
