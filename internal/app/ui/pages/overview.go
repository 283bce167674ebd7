package pages

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/config/logger"
)

type overviewData struct {
	name        string
	code        string
	rank        int
	price       float64
	description string
}

type overviewLoadedMsg struct {
	target *overview
	data   overviewData
}

type overview struct {
	opts   Options
	loader Loader
	data   *overviewData
	ctx    context.Context
	cancel context.CancelFunc
	log    logger.Logger
}

// NewOverview creates the overview page, its data is loaded in Init
func NewOverview(opts Options) tabs.Page {
	ctx, cancel := context.WithCancel(context.Background())

	return &overview{
		opts:   opts,
		loader: NewLoader("Loading overview…"),
		ctx:    ctx,
		cancel: cancel,
		log:    opts.Log,
	}
}

func (o *overview) Init() tea.Cmd {
	coin := o.opts.Coin

	return tea.Batch(o.loader.Model.Tick, load(o.ctx, o.opts.Delay, func() tea.Msg {
		return overviewLoadedMsg{
			target: o,
			data: overviewData{
				name:        coin.Name,
				code:        coin.Code,
				rank:        coin.Rank,
				price:       coin.Price,
				description: coin.Description,
			},
		}
	}))
}

func (o *overview) Update(msg tea.Msg) tea.Cmd {
	if loaded, ok := msg.(overviewLoadedMsg); ok {
		if loaded.target != o {
			return nil
		}

		o.data = &loaded.data
		o.loader.Stop()
		o.log.Debug().Msgf("Overview loaded for '%s'", o.opts.Coin.UID)

		return nil
	}

	return o.loader.Update(msg)
}

func (o *overview) View(width, height int) string {
	if o.data == nil {
		return o.loader.View()
	}

	label := components.MutedStyle.Render
	lines := []string{
		fmt.Sprintf("%s %s", label("Name "), components.TitleStyle.Render(o.data.name)),
		fmt.Sprintf("%s %s", label("Code "), o.data.code),
		fmt.Sprintf("%s #%d", label("Rank "), o.data.rank),
		fmt.Sprintf("%s %s", label("Price"), formatPrice(o.data.price)),
	}

	if o.data.description != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(max(width, 1)).Render(o.data.description))
	}

	return lipgloss.NewStyle().MaxHeight(max(height, 1)).Render(strings.Join(lines, "\n"))
}

func (o *overview) Close() {
	o.cancel()
	o.log.Debug().Msgf("Overview closed for '%s'", o.opts.Coin.UID)
}
