//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"coinscope/internal/app/errors"
	"coinscope/internal/app/report"
	"coinscope/internal/app/ui/screen"
	"coinscope/internal/app/ui/wire"
	"coinscope/internal/app/watchlist"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (exitCode int, err error)
}

// Params contains dependencies for the cli
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	UI        wire.UI
	Watchlist watchlist.Service
	Reporter  report.Reporter
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	options    *Options
	cfg        *config.Config
	ui         wire.UI
	watchlist  watchlist.Service
	reporter   report.Reporter
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		options:   p.Options,
		cfg:       p.Config,
		ui:        p.UI,
		watchlist: p.Watchlist,
		reporter:  p.Reporter,
		out:       os.Stdout,
		errOut:    os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(os.Stdout.Fd())
		},
		log: p.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (exitCode int, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.reporter.Recover(r)
			c.log.Error().Msgf("Recovered from panic: %v", r)

			exitCode, err = 1, fmt.Errorf("panic: %v", r)
		}
	}()

	switch c.options.Type {
	case CommandView:
		err = c.handleView()
	case CommandShow:
		err = c.handleShow()
	case CommandList:
		err = c.handleList()
	case CommandVersion:
		c.handleVersion()
	case CommandHelp:
		c.handleHelp()
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render("Error:"), err)

		return 1, err
	}

	return 0, nil
}

// handleView runs the interactive detail screen until the user leaves it
func (c *cli) handleView() error {
	if !c.isTerminal() {
		return errors.ErrNotATerminal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := c.watchlist.Start(ctx); err != nil {
		return err
	}

	program, err := c.ui(ctx, c.options.Subject, c.options.Tab)
	if err != nil {
		return err
	}

	c.log.Info().Msgf("Opening detail screen for '%s'", c.options.Subject)

	return c.finishView(program.Run())
}

// finishView tears the screen down however the program ended and reports its error
func (c *cli) finishView(final tea.Model, err error) error {
	model, ok := final.(screen.Model)
	if ok {
		model.Teardown()
	}

	if errors.Is(err, tea.ErrProgramKilled) {
		c.log.Debug().Msg("Detail screen closed by context")
		return nil
	}

	if err != nil {
		return err
	}

	if ok {
		return model.Err()
	}

	return nil
}

// handleShow prints the state the detail screen would open with
func (c *cli) handleShow() error {
	if err := c.watchlist.Start(context.Background()); err != nil {
		return err
	}

	snap, err := c.watchlist.Snapshot(c.options.Subject)
	if err != nil {
		return err
	}

	alerts := "not available"
	if snap.NotificationEligible {
		alerts = describeAlert(snap.Alert)
	}

	fmt.Fprintln(c.out, headlineLarge.Render(snap.Title))
	fmt.Fprintf(c.out, "  %s %s\n", labelMedium.Render("watchlist"), yesNo(snap.IsFavorite))
	fmt.Fprintf(c.out, "  %s %s\n", labelMedium.Render("alerts   "), alerts)

	return nil
}

// handleList prints the catalog ordered by rank, marking watched coins
func (c *cli) handleList() error {
	if err := c.watchlist.Start(context.Background()); err != nil {
		return err
	}

	watched := make(map[string]bool)
	for _, uid := range c.watchlist.Favorites() {
		watched[uid] = true
	}

	for _, uid := range c.cfg.CoinUIDs() {
		coin := c.cfg.Catalog[uid]

		mark := " "
		if watched[uid] {
			mark = favorite.Render("★")
		}

		fmt.Fprintf(c.out, "%s %s %-6s %s\n", mark, labelMedium.Render(fmt.Sprintf("#%-3d", coin.Rank)), coin.Code, uid)
	}

	return nil
}

func (c *cli) handleVersion() {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
}

func (c *cli) handleHelp() {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())
}

func describeAlert(rule watchlist.AlertRule) string {
	if !rule.Active() {
		return "off"
	}

	text := "trend only"
	if rule.Change > 0 {
		text = fmt.Sprintf("±%d%%", rule.Change)
		if rule.Trend {
			text += " and trend"
		}
	}

	return text
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
