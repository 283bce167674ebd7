package watchlist

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one callback after a quiet period
type Debouncer interface {
	Trigger()
	Stop()
}

type debouncer struct {
	duration time.Duration
	callback func(events int)
	timer    *time.Timer
	pending  int
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a Debouncer; callback receives the number of coalesced triggers
func NewDebouncer(duration time.Duration, callback func(events int)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger registers an event and restarts the quiet period
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending++

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Stop cancels any pending callback, later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = 0

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || d.pending == 0 {
		d.mu.Unlock()
		return
	}

	events := d.pending
	d.pending = 0
	d.timer = nil

	d.mu.Unlock()

	d.callback(events)
}
