package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/report"
	"coinscope/internal/app/runtime"
	"coinscope/internal/app/ui"
	"coinscope/internal/app/ui/alerts"
	"coinscope/internal/app/ui/navigation"
	"coinscope/internal/app/ui/screen"
	"coinscope/internal/app/watchlist"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// UI creates a Bubble Tea program showing the detail screen of one subject
type UI func(ctx context.Context, subject, tab string) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	ui.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Bus       bus.Bus
	Commands  runtime.CommandBus
	Watchlist watchlist.Service
	Reporter  report.Reporter
	Navigator navigation.Navigator
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, subject, tab string) (*tea.Program, error) {
		coin, err := params.Config.Coin(subject)
		if err != nil {
			return nil, err
		}

		model, err := screen.NewModel(screen.ModelParams{
			Ctx:       ctx,
			Config:    params.Config,
			Coin:      coin,
			Bus:       params.Bus,
			Commands:  params.Commands,
			Alerts:    alertLookup(params.Watchlist),
			Reporter:  params.Reporter,
			Navigator: params.Navigator,
			PageDelay: config.PageLoadDelay,
			Log:       params.Logger,
		})
		if err != nil {
			return nil, err
		}

		// The screen is subscribed at this point so the announced state reaches it
		if err := params.Watchlist.Announce(subject, tab); err != nil {
			return nil, err
		}

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msgf("TUI: Program created for '%s'", subject)

		return p, nil
	}
}

func alertLookup(service watchlist.Service) screen.AlertLookup {
	return func(subject string) alerts.Setting {
		rule := service.Alert(subject)
		return alerts.Setting{Change: rule.Change, Trend: rule.Trend}
	}
}
