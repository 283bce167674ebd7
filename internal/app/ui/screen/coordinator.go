package screen

import (
	"context"
	"fmt"
	"slices"

	"github.com/looplab/fsm"

	"coinscope/internal/app/errors"
	"coinscope/internal/app/runtime"
	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/app/ui/toggle"
	"coinscope/internal/config/logger"
)

// Confirmation texts shown on watchlist clicks
const (
	AddedToWatchlist     = "Added to Watchlist"
	RemovedFromWatchlist = "Removed from Watchlist"
)

// Coordinator owns the screen state and turns intents and updates into transitions
type Coordinator interface {
	// SelectTab is the user clicking a tab
	SelectTab(id tabs.ID) error
	// ExternalTabChanged is a tab change pushed by a collaborator, it never reissues the click side effect
	ExternalTabChanged(id tabs.ID) error
	FavoriteClicked()
	UnfavoriteClicked()
	// ExternalFavoriteChanged is the only way the favorite flag changes
	ExternalFavoriteChanged(value bool) error
	NotificationClicked()
	NotificationEligibilityChanged(eligible bool) error
	ExternalNotificationChanged(active bool) error
	TitleReady(title string) error
	Back()
	State() State
	Subscribe(observer Observer) func()
	Teardown()
}

// Params holds the collaborators of a coordinator
type Params struct {
	Ctx       context.Context
	Subject   string
	Label     string
	Registry  tabs.Registry
	Host      tabs.Host
	Commands  runtime.CommandBus
	Presenter Presenter
	// Unsubscribe detaches the screen from the update stream
	Unsubscribe func()
	Log         logger.Logger
}

type observerEntry struct {
	id uint64
	fn Observer
}

type coordinator struct {
	ctx         context.Context
	subject     string
	registry    tabs.Registry
	host        tabs.Host
	commands    runtime.CommandBus
	presenter   Presenter
	unsubscribe func()
	log         logger.Logger

	favorite  *fsm.FSM
	lifecycle *fsm.FSM

	selected    tabs.ID
	title       string
	eligible    bool
	active      bool
	observers   []observerEntry
	nextObserve uint64
}

// NewCoordinator creates a coordinator and activates the first tab
func NewCoordinator(p Params) (Coordinator, error) {
	first, ok := p.Registry.At(0)
	if !ok {
		return nil, errors.ErrEmptyRegistry
	}

	ctx := p.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	unsubscribe := p.Unsubscribe
	if unsubscribe == nil {
		unsubscribe = func() {}
	}

	c := &coordinator{
		ctx:         ctx,
		subject:     p.Subject,
		registry:    p.Registry,
		host:        p.Host,
		commands:    p.Commands,
		presenter:   p.Presenter,
		unsubscribe: unsubscribe,
		log:         p.Log,
		favorite:    newFavoriteFSM(p.Subject, p.Log),
		lifecycle:   newLifecycleFSM(p.Subject, p.Log),
		title:       p.Label,
	}

	if err := c.activate(first.ID); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *coordinator) SelectTab(id tabs.ID) error {
	if c.tornDown() {
		return nil
	}

	if err := c.activate(id); err != nil {
		return err
	}

	c.presenter.TabSelected(id)
	c.notify()

	return nil
}

func (c *coordinator) ExternalTabChanged(id tabs.ID) error {
	if c.tornDown() {
		return c.stale("tab")
	}

	if err := c.activate(id); err != nil {
		return err
	}

	c.notify()

	return nil
}

func (c *coordinator) FavoriteClicked() {
	if c.tornDown() || c.isFavorite() {
		return
	}

	c.requestFavorite(true, AddedToWatchlist)
}

func (c *coordinator) UnfavoriteClicked() {
	if c.tornDown() || !c.isFavorite() {
		return
	}

	c.requestFavorite(false, RemovedFromWatchlist)
}

func (c *coordinator) ExternalFavoriteChanged(value bool) error {
	if c.tornDown() {
		return c.stale("favorite")
	}

	event := Unfavorite
	if value {
		event = Favorite
	}

	if err := c.favorite.Event(c.ctx, event); err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			c.log.Error().Err(err).Msgf("Failed to apply favorite event for '%s'", c.subject)
		}
	}

	c.notify()

	return nil
}

func (c *coordinator) NotificationClicked() {
	if c.tornDown() || !c.eligible {
		return
	}

	c.presenter.OpenNotificationMenu(c.subject, c.title)
}

func (c *coordinator) NotificationEligibilityChanged(eligible bool) error {
	if c.tornDown() {
		return c.stale("eligibility")
	}

	c.eligible = eligible
	c.notify()

	return nil
}

func (c *coordinator) ExternalNotificationChanged(active bool) error {
	if c.tornDown() {
		return c.stale("notification")
	}

	c.active = active
	c.notify()

	return nil
}

func (c *coordinator) TitleReady(title string) error {
	if c.tornDown() {
		return c.stale("title")
	}

	c.title = title
	c.notify()

	return nil
}

func (c *coordinator) Back() {
	if c.tornDown() {
		return
	}

	c.presenter.NavigateBack()
}

func (c *coordinator) State() State {
	index, _ := c.registry.IndexOf(c.selected)
	isFavorite := c.isFavorite()

	descriptors := c.registry.Tabs()
	items := make([]TabItem, 0, len(descriptors))
	for _, d := range descriptors {
		items = append(items, TabItem{ID: d.ID, Label: d.Label, Selected: d.ID == c.selected})
	}

	return State{
		Subject:              c.subject,
		SelectedTab:          c.selected,
		SelectedIndex:        index,
		Title:                c.title,
		IsFavorite:           isFavorite,
		NotificationEligible: c.eligible,
		NotificationActive:   c.active,
		Favorite:             toggle.Favorite(isFavorite),
		Notification:         toggle.Notification(c.eligible, c.active),
		Tabs:                 items,
		TornDown:             c.tornDown(),
	}
}

// Subscribe registers an observer and delivers the current state to it right away
func (c *coordinator) Subscribe(observer Observer) func() {
	if c.tornDown() {
		return func() {}
	}

	c.nextObserve++
	id := c.nextObserve
	c.observers = append(c.observers, observerEntry{id: id, fn: observer})

	observer(c.State())

	return func() {
		for i, entry := range c.observers {
			if entry.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Teardown stops accepting events, unsubscribes from updates, then releases pages
func (c *coordinator) Teardown() {
	if err := c.lifecycle.Event(c.ctx, Teardown); err != nil {
		return
	}

	c.unsubscribe()
	c.host.Release()
	c.observers = nil

	c.log.Info().Msgf("Screen for '%s' torn down", c.subject)
}

func (c *coordinator) activate(id tabs.ID) error {
	if _, err := c.registry.IndexOf(id); err != nil {
		return err
	}

	page, created, err := c.host.Activate(id)
	if err != nil {
		return err
	}

	if created {
		c.presenter.PageCreated(id, page)
	}

	c.selected = id

	return nil
}

func (c *coordinator) requestFavorite(value bool, confirmation string) {
	c.commands.Publish(runtime.Command{
		Type: runtime.CommandSetFavorite,
		Data: runtime.SetFavoriteData{Subject: c.subject, Value: value},
	})

	c.presenter.ShowConfirmation(confirmation)
}

func (c *coordinator) isFavorite() bool {
	return c.favorite.Is(Favorited)
}

func (c *coordinator) tornDown() bool {
	return c.lifecycle.Is(TornDown)
}

func (c *coordinator) stale(kind string) error {
	return fmt.Errorf("%w: %s update for '%s'", errors.ErrStaleUpdate, kind, c.subject)
}

func (c *coordinator) notify() {
	if len(c.observers) == 0 {
		return
	}

	// observers may unsubscribe while being notified
	state := c.State()
	for _, entry := range slices.Clone(c.observers) {
		entry.fn(state)
	}
}
