package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinscope/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg.Catalog)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, EventsBufferSize, cfg.Events.Buffer)
	assert.Equal(t, HudDuration, cfg.Hud.Duration)
	assert.Equal(t, WatchlistFile, cfg.Watchlist.Path)
	assert.Equal(t, []string{"*"}, cfg.Alerts.Eligible)
	assert.False(t, cfg.Strict)
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		check   func(t *testing.T, cfg *Config)
		wantErr error
	}{
		{
			name: "missing file falls back to demo catalog",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			check: func(t *testing.T, cfg *Config) {
				assert.Contains(t, cfg.Catalog, "bitcoin")
				assert.Equal(t, "bitcoin", cfg.Catalog["bitcoin"].UID)
			},
		},
		{
			name: "valid file",
			path: func(t *testing.T) string {
				return writeConfig(t, `
logging:
  level: debug
  format: json
strict: true
hud:
  duration: 3s
alerts:
  eligible: ["bit*"]
catalog:
  bitcoin:
    name: Bitcoin
    rank: 1
    markets:
      - exchange: Binance
        pair: BTC/USDT
        price: 10
        volume: 20
  solana:
    rank: 5
`)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.True(t, cfg.Strict)
				assert.Equal(t, 3*time.Second, cfg.Hud.Duration)
				assert.Equal(t, []string{"bit*"}, cfg.Alerts.Eligible)
				assert.Len(t, cfg.Catalog, 2)
				assert.Len(t, cfg.Catalog["bitcoin"].Markets, 1)
				assert.Equal(t, "solana", cfg.Catalog["solana"].Name)
				assert.Equal(t, "SOLANA", cfg.Catalog["solana"].Code)
			},
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "catalog: [unterminated") },
			wantErr: errors.ErrFailedToReadConfig,
		},
		{
			name:    "wrong type",
			path:    func(t *testing.T) string { return writeConfig(t, "hud: \"not a map\"\n") },
			wantErr: errors.ErrFailedToParseConfig,
		},
		{
			name:    "invalid alert pattern",
			path:    func(t *testing.T) string { return writeConfig(t, "alerts:\n  eligible: [\"[\"]\n") },
			wantErr: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_EnvOverride(t *testing.T) {
	t.Setenv("COINSCOPE_LOGGING_LEVEL", "warn")
	t.Setenv("COINSCOPE_STRICT", "true")

	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Strict)
}

func Test_Config_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *Config) {}},
		{name: "zero buffer", mutate: func(cfg *Config) { cfg.Events.Buffer = 0 }, wantErr: errors.ErrInvalidEventsBuffer},
		{name: "zero hud", mutate: func(cfg *Config) { cfg.Hud.Duration = 0 }, wantErr: errors.ErrInvalidHudDuration},
		{name: "negative debounce", mutate: func(cfg *Config) { cfg.Watchlist.Debounce = -time.Second }, wantErr: errors.ErrInvalidWatchDebounce},
		{name: "empty catalog", mutate: func(cfg *Config) { cfg.Catalog = map[string]*Coin{} }, wantErr: errors.ErrCatalogEmpty},
		{name: "bad ignore glob", mutate: func(cfg *Config) { cfg.Alerts.Ignore = []string{"[a"} }, wantErr: errors.ErrInvalidAlertPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Catalog = DemoCatalog()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func Test_Config_Coin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog = DemoCatalog()
	cfg.ApplyDefaults()

	coin, err := cfg.Coin("ethereum")
	require.NoError(t, err)
	assert.Equal(t, "ETH", coin.Code)

	_, err = cfg.Coin("missing")
	assert.ErrorIs(t, err, errors.ErrSubjectNotFound)
}

func Test_Config_CoinUIDs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog = DemoCatalog()

	assert.Equal(t, []string{"bitcoin", "ethereum", "dogecoin"}, cfg.CoinUIDs())
}
