package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"coinscope/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	}
	Strict bool `yaml:"strict"`
	Events struct {
		Buffer int `yaml:"buffer"`
	}
	Hud struct {
		Duration time.Duration `yaml:"duration"`
	}
	Watchlist struct {
		Path     string        `yaml:"path"`
		Debounce time.Duration `yaml:"debounce"`
	}
	Alerts struct {
		Eligible []string `yaml:"eligible"`
		Ignore   []string `yaml:"ignore"`
	}
	Sentry struct {
		DSN         string `yaml:"dsn"`
		Environment string `yaml:"environment"`
	}
	Catalog map[string]*Coin `yaml:"catalog"`
}

// Coin represents a catalog entry the detail screen can show
type Coin struct {
	UID         string   `yaml:"-"`
	Name        string   `yaml:"name"`
	Code        string   `yaml:"code"`
	Rank        int      `yaml:"rank"`
	Price       float64  `yaml:"price"`
	Description string   `yaml:"description"`
	Markets     []Market `yaml:"markets"`
}

// Market represents a single trading venue for a coin
type Market struct {
	Exchange string  `yaml:"exchange"`
	Pair     string  `yaml:"pair"`
	Price    float64 `yaml:"price"`
	Volume   float64 `yaml:"volume"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Catalog: make(map[string]*Coin),
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.Logging.File = DefaultLogFile

	cfg.Events.Buffer = EventsBufferSize
	cfg.Hud.Duration = HudDuration

	cfg.Watchlist.Path = WatchlistFile
	cfg.Watchlist.Debounce = WatchlistDebounce

	cfg.Alerts.Eligible = []string{"*"}

	return cfg
}

// Load loads the configuration from file, falling back to defaults with the demo catalog
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFile
	}

	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.ErrFailedToReadConfig
		}

		data = nil
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"logging.level", "logging.format", "logging.file", "strict", "sentry.dsn", "sentry.environment", "watchlist.path"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DemoCatalog()
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ApplyDefaults fills in derived catalog fields
func (c *Config) ApplyDefaults() {
	for uid, coin := range c.Catalog {
		if coin == nil {
			coin = &Coin{}
			c.Catalog[uid] = coin
		}

		coin.UID = uid

		if coin.Name == "" {
			coin.Name = uid
		}

		if coin.Code == "" {
			coin.Code = strings.ToUpper(uid)
		}
	}
}

// Coin looks up a catalog entry by uid
func (c *Config) Coin(uid string) (*Coin, error) {
	coin, ok := c.Catalog[uid]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", errors.ErrSubjectNotFound, uid)
	}

	return coin, nil
}

// CoinUIDs returns catalog uids ordered by rank, then uid
func (c *Config) CoinUIDs() []string {
	uids := make([]string, 0, len(c.Catalog))
	for uid := range c.Catalog {
		uids = append(uids, uid)
	}

	sort.Slice(uids, func(i, j int) bool {
		a, b := c.Catalog[uids[i]], c.Catalog[uids[j]]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}

		return uids[i] < uids[j]
	})

	return uids
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Events.Buffer <= 0 {
		return errors.ErrInvalidEventsBuffer
	}

	if c.Hud.Duration <= 0 {
		return errors.ErrInvalidHudDuration
	}

	if c.Watchlist.Debounce < 0 {
		return errors.ErrInvalidWatchDebounce
	}

	if len(c.Catalog) == 0 {
		return errors.ErrCatalogEmpty
	}

	for _, pattern := range append(append([]string{}, c.Alerts.Eligible...), c.Alerts.Ignore...) {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidAlertPattern, pattern)
		}
	}

	return nil
}

// DemoCatalog returns the catalog used when no configuration file is present
func DemoCatalog() map[string]*Coin {
	return map[string]*Coin{
		"bitcoin": {
			Name:        "Bitcoin",
			Code:        "BTC",
			Rank:        1,
			Price:       67250.12,
			Description: "Peer-to-peer electronic cash system secured by proof of work.",
			Markets: []Market{
				{Exchange: "Binance", Pair: "BTC/USDT", Price: 67248.50, Volume: 1532000000},
				{Exchange: "Coinbase", Pair: "BTC/USD", Price: 67255.01, Volume: 612000000},
				{Exchange: "Kraken", Pair: "BTC/EUR", Price: 62110.40, Volume: 201000000},
			},
		},
		"ethereum": {
			Name:        "Ethereum",
			Code:        "ETH",
			Rank:        2,
			Price:       3120.77,
			Description: "Programmable settlement layer for smart contracts.",
			Markets: []Market{
				{Exchange: "Binance", Pair: "ETH/USDT", Price: 3120.10, Volume: 804000000},
				{Exchange: "Coinbase", Pair: "ETH/USD", Price: 3121.45, Volume: 355000000},
			},
		},
		"dogecoin": {
			Name:        "Dogecoin",
			Code:        "DOGE",
			Rank:        9,
			Price:       0.1432,
			Description: "Community coin that started as a joke.",
			Markets: []Market{
				{Exchange: "Binance", Pair: "DOGE/USDT", Price: 0.1431, Volume: 98000000},
			},
		},
	}
}
