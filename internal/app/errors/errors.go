package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig   = errors.New("failed to read config file")
	ErrFailedToParseConfig  = errors.New("failed to parse config file")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidEventsBuffer  = errors.New("events buffer must be greater than 0")
	ErrInvalidHudDuration   = errors.New("hud duration must be greater than 0")
	ErrInvalidWatchDebounce = errors.New("watchlist debounce must not be negative")
	ErrInvalidAlertPattern  = errors.New("invalid alert eligibility pattern")
	ErrCatalogEmpty         = errors.New("catalog has no coins")

	ErrSubjectNotFound = errors.New("coin not found in catalog")

	ErrUnknownTab    = errors.New("unknown tab")
	ErrDuplicateTab  = errors.New("duplicate tab")
	ErrEmptyRegistry = errors.New("tab registry needs at least one tab")
	ErrHostReleased  = errors.New("page host already released")
	ErrStaleUpdate   = errors.New("update arrived after screen teardown")

	ErrFailedToReadWatchlist  = errors.New("failed to read watchlist")
	ErrFailedToParseWatchlist = errors.New("failed to parse watchlist")
	ErrFailedToWriteWatchlist = errors.New("failed to write watchlist")

	ErrNotATerminal   = errors.New("interactive view requires a terminal")
	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
