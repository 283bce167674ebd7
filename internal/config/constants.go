package config

import "time"

// app constants
const (
	AppName = "coinscope"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultLogFile   = "coinscope.log"

	ConfigFile = "coinscope.yaml"
	EnvFile    = ".env"
	EnvPrefix  = "COINSCOPE"

	Version = "0.3.0"
)

// event constants
const (
	EventsBufferSize   = 32
	CommandsBufferSize = 8
)

// hud constants
const (
	HudDuration = 2 * time.Second
)

// watchlist constants
const (
	WatchlistFile     = "watchlist.yaml"
	WatchlistDebounce = 150 * time.Millisecond
	WatchlistFileMode = 0o644
)

// shutdown constants
const (
	ShutdownTimeout = 5 * time.Second
	ReportTimeout   = 2 * time.Second
)

// page constants
const (
	PageLoadDelay = 250 * time.Millisecond
)
