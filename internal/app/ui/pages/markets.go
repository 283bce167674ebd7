package pages

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/config"
	"coinscope/internal/config/logger"
)

const (
	exchangeColumnWidth = 14
	pairColumnWidth     = 10
	priceColumnWidth    = 14
	volumeColumnWidth   = 10
)

type marketsLoadedMsg struct {
	target  *markets
	markets []config.Market
}

type markets struct {
	opts   Options
	loader Loader
	table  table.Model
	loaded bool
	ctx    context.Context
	cancel context.CancelFunc
	log    logger.Logger
}

// NewMarkets creates the markets page, rows are filled in once Init's load completes
func NewMarkets(opts Options) tabs.Page {
	ctx, cancel := context.WithCancel(context.Background())

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Exchange", Width: exchangeColumnWidth},
			{Title: "Pair", Width: pairColumnWidth},
			{Title: "Price", Width: priceColumnWidth},
			{Title: "Volume", Width: volumeColumnWidth},
		}),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(components.FgPrimary).Bold(true)
	styles.Selected = components.SelectedRowStyle
	t.SetStyles(styles)

	return &markets{
		opts:   opts,
		loader: NewLoader("Loading markets…"),
		table:  t,
		ctx:    ctx,
		cancel: cancel,
		log:    opts.Log,
	}
}

func (m *markets) Init() tea.Cmd {
	rows := make([]config.Market, len(m.opts.Coin.Markets))
	copy(rows, m.opts.Coin.Markets)

	return tea.Batch(m.loader.Model.Tick, load(m.ctx, m.opts.Delay, func() tea.Msg {
		return marketsLoadedMsg{target: m, markets: rows}
	}))
}

func (m *markets) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case marketsLoadedMsg:
		if msg.target != m {
			return nil
		}

		m.table.SetRows(marketRows(msg.markets))
		m.loaded = true
		m.loader.Stop()
		m.log.Debug().Msgf("Loaded %d markets for '%s'", len(msg.markets), m.opts.Coin.UID)

		return nil
	case tea.KeyMsg:
		if !m.loaded {
			return nil
		}

		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return cmd
	}

	return m.loader.Update(msg)
}

func (m *markets) View(width, height int) string {
	if !m.loaded {
		return m.loader.View()
	}

	if len(m.table.Rows()) == 0 {
		return components.EmptyStateStyle.Render("No markets listed")
	}

	t := m.table
	t.SetWidth(width)
	t.SetHeight(max(height, 1))

	return t.View()
}

func (m *markets) Close() {
	m.cancel()
	m.log.Debug().Msgf("Markets closed for '%s'", m.opts.Coin.UID)
}

func marketRows(markets []config.Market) []table.Row {
	rows := make([]table.Row, 0, len(markets))
	for _, market := range markets {
		rows = append(rows, table.Row{
			market.Exchange,
			market.Pair,
			formatPrice(market.Price),
			formatVolume(market.Volume),
		})
	}

	return rows
}
