package screen

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/report"
	"coinscope/internal/app/runtime"
	"coinscope/internal/app/ui/alerts"
	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/navigation"
	"coinscope/internal/app/ui/pages"
	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// AlertLookup returns the current alert setting of a subject
type AlertLookup func(subject string) alerts.Setting

// ModelParams holds the dependencies of a detail screen
type ModelParams struct {
	Ctx       context.Context
	Config    *config.Config
	Coin      *config.Coin
	Bus       bus.Bus
	Commands  runtime.CommandBus
	Alerts    AlertLookup
	Reporter  report.Reporter
	Navigator navigation.Navigator
	PageDelay time.Duration
	Log       logger.Logger
}

// Model is the Bubble Tea model of the coin detail screen
type Model struct {
	cfg         *config.Config
	coin        *config.Coin
	commands    runtime.CommandBus
	alertsOf    AlertLookup
	reporter    report.Reporter
	navigator   navigation.Navigator
	msgChan     <-chan bus.Message
	registry    tabs.Registry
	host        tabs.Host
	coordinator Coordinator
	presenter   *teaPresenter

	state struct {
		snapshot *State
		modal    alerts.Model
		err      error
	}

	ui struct {
		width        int
		height       int
		keys         KeyMap
		help         help.Model
		toast        *components.Toast
		toastRunning bool
	}

	log logger.Logger
}

// NewModel creates the detail screen for one coin and subscribes it to the update stream
func NewModel(p ModelParams) (Model, error) {
	log := p.Log.WithComponent("SCREEN")

	ctx, cancel := context.WithCancel(p.Ctx)
	msgChan := p.Bus.Subscribe(ctx)

	registry, err := pages.NewRegistry(pages.Options{Coin: p.Coin, Delay: p.PageDelay, Log: log})
	if err != nil {
		cancel()
		return Model{}, err
	}

	host := tabs.NewHost(registry, log)
	presenter := newTeaPresenter(log)

	coordinator, err := NewCoordinator(Params{
		Ctx:         ctx,
		Subject:     p.Coin.UID,
		Label:       p.Coin.Name,
		Registry:    registry,
		Host:        host,
		Commands:    p.Commands,
		Presenter:   presenter,
		Unsubscribe: cancel,
		Log:         log,
	})
	if err != nil {
		cancel()
		return Model{}, err
	}

	m := Model{
		cfg:         p.Config,
		coin:        p.Coin,
		commands:    p.Commands,
		alertsOf:    p.Alerts,
		reporter:    p.Reporter,
		navigator:   p.Navigator,
		msgChan:     msgChan,
		registry:    registry,
		host:        host,
		coordinator: coordinator,
		presenter:   presenter,
		log:         log,
	}

	snapshot := &State{}
	coordinator.Subscribe(func(s State) { *snapshot = s })
	m.state.snapshot = snapshot

	m.ui.width = components.DefaultWidth
	m.ui.height = components.DefaultHeight
	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.toast = components.NewToast()

	log.Debug().Msgf("Created screen for '%s' and subscribed to updates", p.Coin.UID)

	return m, nil
}

// Init starts listening for updates and runs the first page's init
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForMsgCmd(m.msgChan), m.presenter.drain())
}

// State returns the last state published by the coordinator
func (m Model) State() State {
	return *m.state.snapshot
}

// Err returns the error the screen quit with, if any
func (m Model) Err() error {
	return m.state.err
}

// Coordinator exposes the screen coordinator
func (m Model) Coordinator() Coordinator {
	return m.coordinator
}

// Teardown closes the screen when the program exits without a quit key, repeated calls are no-ops
func (m Model) Teardown() {
	m.teardown()
}

// teardown closes the screen: no more updates, pages released
func (m *Model) teardown() {
	m.coordinator.Teardown()
	*m.state.snapshot = m.coordinator.State()
}
