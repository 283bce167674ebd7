//go:generate mockgen -source=service.go -destination=service_mock.go -package=watchlist
package watchlist

import (
	"context"
	"fmt"
	"sync"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/runtime"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// Failure messages shown to the user when a command cannot be persisted
const (
	FailedToUpdateWatchlist = "Could not update watchlist"
	FailedToUpdateAlerts    = "Could not update alerts"
)

// Snapshot is the collaborator's view of one subject
type Snapshot struct {
	Subject              string
	Title                string
	IsFavorite           bool
	NotificationEligible bool
	NotificationActive   bool
	Alert                AlertRule
}

// Service owns the persisted watchlist: it executes commands and publishes subject state on the bus
type Service interface {
	// Start loads the document, begins consuming commands and watches the file for outside edits
	Start(ctx context.Context) error
	// Announce publishes the full state of a subject, and the tab to restore when tab is set
	Announce(subject, tab string) error
	Snapshot(subject string) (Snapshot, error)
	Alert(subject string) AlertRule
	Favorites() []string
	Close()
}

type service struct {
	cfg      *config.Config
	store    Store
	matcher  Matcher
	bus      bus.Bus
	commands runtime.CommandBus
	watcher  Watcher
	log      logger.Logger

	mu     sync.RWMutex
	doc    *Document
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates the watchlist service
func NewService(cfg *config.Config, store Store, b bus.Bus, commands runtime.CommandBus, log logger.Logger) (Service, error) {
	matcher, err := NewMatcher(cfg.Alerts.Eligible, cfg.Alerts.Ignore)
	if err != nil {
		return nil, err
	}

	return &service{
		cfg:      cfg,
		store:    store,
		matcher:  matcher,
		bus:      b,
		commands: commands,
		log:      log.WithComponent("WATCHLIST"),
		doc:      NewDocument(),
	}, nil
}

func (s *service) Start(ctx context.Context) error {
	if err := s.load(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	cmdCh := s.commands.Subscribe(ctx)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		for cmd := range cmdCh {
			s.handleCommand(cmd)
		}
	}()

	w, err := NewWatcher(s.store.Path(), s.cfg.Watchlist.Debounce, s.reload, s.log)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to create watchlist watcher, outside edits will not be seen")
		return nil
	}

	if err := w.Start(ctx); err != nil {
		w.Close()
		s.log.Warn().Err(err).Msg("Failed to watch watchlist file, outside edits will not be seen")

		return nil
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	return nil
}

func (s *service) Announce(subject, tab string) error {
	snap, err := s.Snapshot(subject)
	if err != nil {
		return err
	}

	s.publish(bus.EventTitleReady, bus.TitleReady{SubjectEvent: bus.SubjectEvent{Subject: subject}, Title: snap.Title})
	s.publishFlag(bus.EventFavoriteChanged, subject, snap.IsFavorite)
	s.publishFlag(bus.EventNotificationEligibility, subject, snap.NotificationEligible)
	s.publishFlag(bus.EventNotificationChanged, subject, snap.NotificationActive)

	if tab != "" {
		s.publish(bus.EventTabChanged, bus.TabChanged{SubjectEvent: bus.SubjectEvent{Subject: subject}, Tab: tab})
	}

	return nil
}

func (s *service) Snapshot(subject string) (Snapshot, error) {
	coin, err := s.cfg.Coin(subject)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rule := s.doc.Alert(subject)

	return Snapshot{
		Subject:              subject,
		Title:                Title(coin),
		IsFavorite:           s.doc.IsFavorite(subject),
		NotificationEligible: s.matcher.Match(subject),
		NotificationActive:   rule.Active(),
		Alert:                rule,
	}, nil
}

func (s *service) Alert(subject string) AlertRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.doc.Alert(subject)
}

func (s *service) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.doc.Favorites))
	copy(out, s.doc.Favorites)

	return out
}

// Close stops the file watcher and waits for the command loop to drain
func (s *service) Close() {
	s.mu.Lock()
	w, cancel := s.watcher, s.cancel
	s.watcher, s.cancel = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if w != nil {
		w.Close()
	}

	s.wg.Wait()
}

// Title returns the display title of a coin
func Title(coin *config.Coin) string {
	return fmt.Sprintf("%s (%s)", coin.Name, coin.Code)
}

func (s *service) load() error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.log.Debug().Msgf("Loaded %d favorites and %d alert rules from %s", len(doc.Favorites), len(doc.Alerts), s.store.Path())

	return nil
}

func (s *service) handleCommand(cmd runtime.Command) {
	switch data := cmd.Data.(type) {
	case runtime.SetFavoriteData:
		s.setFavorite(cmd.ID, data)
	case runtime.SetAlertData:
		s.setAlert(cmd.ID, data)
	default:
		s.log.Warn().Msgf("Ignoring command %s (%s) with unexpected payload %T", cmd.ID, cmd.Type, cmd.Data)
	}
}

func (s *service) setFavorite(id string, data runtime.SetFavoriteData) {
	s.mu.Lock()
	next := s.doc.Clone()
	next.SetFavorite(data.Subject, data.Value)

	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Msgf("Command %s: failed to set favorite of '%s'", id, data.Subject)
		s.publishFailure(data.Subject, FailedToUpdateWatchlist, err)

		return
	}

	s.doc = next
	s.mu.Unlock()

	s.log.Info().Msgf("Command %s: '%s' favorite = %t", id, data.Subject, data.Value)
	s.publishFlag(bus.EventFavoriteChanged, data.Subject, data.Value)
}

func (s *service) setAlert(id string, data runtime.SetAlertData) {
	rule := AlertRule{Change: data.Change, Trend: data.Trend}

	s.mu.Lock()
	next := s.doc.Clone()
	next.SetAlert(data.Subject, rule)

	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Msgf("Command %s: failed to set alert of '%s'", id, data.Subject)
		s.publishFailure(data.Subject, FailedToUpdateAlerts, err)

		return
	}

	s.doc = next
	s.mu.Unlock()

	s.log.Info().Msgf("Command %s: '%s' alert = %+v", id, data.Subject, rule)
	s.publishFlag(bus.EventNotificationChanged, data.Subject, rule.Active())
}

// reload re-reads the file after an outside edit and publishes what changed
func (s *service) reload() {
	doc, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to reload watchlist, keeping last known state")
		return
	}

	s.mu.Lock()
	prev := s.doc
	s.doc = doc
	s.mu.Unlock()

	for _, uid := range s.cfg.CoinUIDs() {
		if prev.IsFavorite(uid) != doc.IsFavorite(uid) {
			s.publishFlag(bus.EventFavoriteChanged, uid, doc.IsFavorite(uid))
		}

		if prev.Alert(uid).Active() != doc.Alert(uid).Active() {
			s.publishFlag(bus.EventNotificationChanged, uid, doc.Alert(uid).Active())
		}
	}
}

func (s *service) publishFlag(msgType bus.MessageType, subject string, value bool) {
	s.publish(msgType, bus.FlagChanged{SubjectEvent: bus.SubjectEvent{Subject: subject}, Value: value})
}

func (s *service) publishFailure(subject, message string, err error) {
	s.publish(bus.EventCollaboratorFailed, bus.CollaboratorFailed{
		SubjectEvent: bus.SubjectEvent{Subject: subject},
		Message:      message,
		Error:        err,
	})
}

func (s *service) publish(msgType bus.MessageType, data interface{}) {
	s.bus.Publish(bus.Message{Type: msgType, Data: data, Critical: true})
}
