// Package alerts implements the notification configuration surface opened from the detail screen.
package alerts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/ui/components"
)

// Thresholds are the selectable price change alert levels in percent, 0 means off
var Thresholds = []int{0, 2, 5, 10}

const (
	rowChange = iota
	rowTrend
	rowCount
)

// Setting is the alert rule of one subject
type Setting struct {
	Change int
	Trend  bool
}

// Active reports whether any alert is enabled
func (s Setting) Active() bool {
	return s.Change > 0 || s.Trend
}

// AppliedMsg is emitted when the user confirms a setting
type AppliedMsg struct {
	Subject string
	Setting Setting
}

// ClosedMsg is emitted when the user leaves without applying
type ClosedMsg struct {
	Subject string
}

// Model is the alerts modal
type Model struct {
	subject   string
	label     string
	threshold int
	trend     bool
	cursor    int
	keys      components.KeyMap
}

// New creates the modal for a subject, preselecting its current setting
func New(subject, label string, current Setting) Model {
	return Model{
		subject:   subject,
		label:     label,
		threshold: thresholdIndex(current.Change),
		trend:     current.Trend,
		keys:      components.DefaultKeyMap(),
	}
}

// Subject returns the subject the modal configures
func (m Model) Subject() string {
	return m.subject
}

// Setting returns the setting currently selected in the modal
func (m Model) Setting() Setting {
	return Setting{Change: Thresholds[m.threshold], Trend: m.trend}
}

// Update handles key presses and returns the resulting message as a command
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount
	case key.Matches(keyMsg, m.keys.PrevTab):
		m.change(-1)
	case key.Matches(keyMsg, m.keys.NextTab):
		m.change(1)
	case key.Matches(keyMsg, m.keys.Apply):
		applied := AppliedMsg{Subject: m.subject, Setting: m.Setting()}
		return m, func() tea.Msg { return applied }
	case key.Matches(keyMsg, m.keys.Back):
		closed := ClosedMsg{Subject: m.subject}
		return m, func() tea.Msg { return closed }
	}

	return m, nil
}

func (m *Model) change(delta int) {
	switch m.cursor {
	case rowChange:
		m.threshold = (m.threshold + len(Thresholds) + delta) % len(Thresholds)
	case rowTrend:
		m.trend = !m.trend
	}
}

// View renders the modal
func (m Model) View() string {
	rows := []string{
		m.renderRow(rowChange, "Price change", changeLabel(Thresholds[m.threshold])),
		m.renderRow(rowTrend, "Trend alerts", onOff(m.trend)),
	}

	title := components.TitleStyle.Render(fmt.Sprintf("Alerts for %s", m.label))
	help := components.HelpStyle.Render("↑/↓ select • ←/→ change • enter apply • esc back")

	return components.PanelStyle.Render(strings.Join([]string{title, "", strings.Join(rows, "\n"), "", help}, "\n"))
}

func (m Model) renderRow(row int, name, value string) string {
	line := fmt.Sprintf("%s ‹ %s ›", components.PadRight(name, 14), value)
	if row == m.cursor {
		return components.SelectedRowStyle.Render("▸ " + line)
	}

	return "  " + line
}

func thresholdIndex(change int) int {
	for i, t := range Thresholds {
		if t == change {
			return i
		}
	}

	return 0
}

func changeLabel(change int) string {
	if change == 0 {
		return "off"
	}

	return fmt.Sprintf("±%d%%", change)
}

func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
