package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/navigation"
)

// View renders the UI
func (m Model) View() string {
	state := m.State()
	if state.TornDown {
		return ""
	}

	if m.navigator.CurrentView() == navigation.ViewAlerts {
		return lipgloss.Place(m.ui.width, m.ui.height, lipgloss.Center, lipgloss.Center, m.state.modal.View())
	}

	sections := []string{
		components.RenderHeader(m.ui.width, m.renderTitle(state), m.renderInfo(state)),
		m.renderTabs(state),
		components.RenderLine(m.ui.width),
		components.RenderContent(m.renderPage(state)),
		m.ui.toast.Render(),
		components.RenderFooter(m.ui.width, m.renderHelp(state)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitle renders the toolbar title with the watchlist glyph
func (m Model) renderTitle(state State) string {
	return components.TitleStyle.Render(state.Title) + " " + components.FavoriteStyle.Render(state.Favorite.Glyph())
}

// renderInfo renders the rank, code and, when visible, the alerts glyph
func (m Model) renderInfo(state State) string {
	info := fmt.Sprintf("#%d %s", m.coin.Rank, m.coin.Code)

	if glyph := state.Notification.Glyph(); glyph != "" {
		info += " " + glyph
	}

	return components.MutedStyle.Render(info)
}

func (m Model) renderTabs(state State) string {
	labels := make([]string, 0, len(state.Tabs))
	for _, item := range state.Tabs {
		labels = append(labels, item.Label)
	}

	return components.RenderTabs(labels, state.SelectedIndex)
}

func (m Model) renderPage(state State) string {
	page, ok := m.host.Page(state.SelectedTab)
	if !ok {
		return ""
	}

	height := m.ui.height - components.ChromeHeight
	if height < components.MinPageHeight {
		height = components.MinPageHeight
	}

	content := page.View(m.ui.width-4, height)

	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines[:height], "\n")
}

func (m Model) renderHelp(state State) string {
	return m.ui.help.View(m.ui.keys.forState(state))
}
