package screen

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/bus"
	"coinscope/internal/app/errors"
	"coinscope/internal/app/runtime"
	"coinscope/internal/app/ui/alerts"
	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/navigation"
	"coinscope/internal/app/ui/tabs"
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// toastTickMsg advances the toast animation
type toastTickMsg time.Time

// channelClosedMsg signals the update stream has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		return m, nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		if m.coordinator.State().TornDown {
			return m, nil
		}

		m.log.Warn().Msg("Update stream closed, quitting")
		m.teardown()

		return m, tea.Quit

	case openAlertsMsg:
		m.state.modal = alerts.New(msg.subject, msg.label, m.alertsOf(msg.subject))
		m.navigator.Push(navigation.ViewAlerts)

		return m, nil

	case alerts.AppliedMsg:
		m.commands.Publish(runtime.Command{
			Type: runtime.CommandSetAlert,
			Data: runtime.SetAlertData{Subject: msg.Subject, Change: msg.Setting.Change, Trend: msg.Setting.Trend},
		})
		m.navigator.Back()

		return m, nil

	case alerts.ClosedMsg:
		m.navigator.Back()
		return m, nil

	case backMsg:
		if m.navigator.Back() {
			return m, nil
		}

		m.teardown()

		return m, tea.Quit

	case toastMsg:
		m.ui.toast.Show(msg.text, msg.kind, m.cfg.Hud.Duration)

		if m.ui.toastRunning {
			return m, nil
		}

		m.ui.toastRunning = true

		return m, toastTickCmd()

	case toastTickMsg:
		if m.ui.toast.Update() {
			return m, toastTickCmd()
		}

		m.ui.toastRunning = false

		return m, nil
	}

	return m, m.forwardToPages(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("Force quit requested, exiting immediately")
		m.teardown()

		return m, tea.Quit
	}

	if m.navigator.CurrentView() == navigation.ViewAlerts {
		var cmd tea.Cmd
		m.state.modal, cmd = m.state.modal.Update(msg)

		return m, cmd
	}

	state := m.State()

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Back):
		m.coordinator.Back()

	case key.Matches(msg, m.ui.keys.PrevTab):
		return m.selectTabAt(wrap(state.SelectedIndex-1, m.registry.Len()))

	case key.Matches(msg, m.ui.keys.NextTab):
		return m.selectTabAt(wrap(state.SelectedIndex+1, m.registry.Len()))

	case key.Matches(msg, m.ui.keys.Tab):
		return m.selectTabAt(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.ui.keys.Favorite):
		if state.Favorite.ShowFavorite {
			m.coordinator.FavoriteClicked()
		} else {
			m.coordinator.UnfavoriteClicked()
		}

	case key.Matches(msg, m.ui.keys.Alerts):
		m.coordinator.NotificationClicked()

	default:
		if page, ok := m.host.Page(state.SelectedTab); ok {
			return m, page.Update(msg)
		}
	}

	return m, m.presenter.drain()
}

// selectTabAt selects the tab at index as a user click, positions outside the tab bar are ignored
func (m Model) selectTabAt(index int) (tea.Model, tea.Cmd) {
	descriptor, ok := m.registry.At(index)
	if !ok {
		return m, nil
	}

	if err := m.coordinator.SelectTab(descriptor.ID); err != nil {
		cmd := m.fail(err)
		return m, tea.Batch(m.presenter.drain(), cmd)
	}

	return m, m.presenter.drain()
}

// handleMessage dispatches update stream messages about this screen's subject
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	subject, ok := subjectOf(msg.Data)
	if !ok || subject != m.coin.UID {
		return m, waitForMsgCmd(m.msgChan)
	}

	var err error

	switch data := msg.Data.(type) {
	case bus.TitleReady:
		err = m.coordinator.TitleReady(data.Title)
	case bus.TabChanged:
		err = m.coordinator.ExternalTabChanged(tabs.ID(data.Tab))
	case bus.CollaboratorFailed:
		m.log.Warn().Err(data.Error).Msgf("Collaborator failed: %s", data.Message)
		m.presenter.ShowError(data.Message)
	case bus.FlagChanged:
		switch msg.Type {
		case bus.EventFavoriteChanged:
			err = m.coordinator.ExternalFavoriteChanged(data.Value)
		case bus.EventNotificationEligibility:
			err = m.coordinator.NotificationEligibilityChanged(data.Value)
		case bus.EventNotificationChanged:
			err = m.coordinator.ExternalNotificationChanged(data.Value)
		}
	}

	cmds := []tea.Cmd{m.presenter.drain()}

	if err != nil {
		if cmd := m.fail(err); cmd != nil {
			return m, tea.Batch(append(cmds, cmd)...)
		}
	}

	return m, tea.Batch(append(cmds, waitForMsgCmd(m.msgChan))...)
}

// fail applies the error policy of the screen and returns tea.Quit when the screen must close
func (m *Model) fail(err error) tea.Cmd {
	switch {
	case errors.Is(err, errors.ErrStaleUpdate):
		m.log.Debug().Err(err).Msg("Dropped update after teardown")
		return nil

	case errors.Is(err, errors.ErrUnknownTab) && m.cfg.Strict:
		m.log.Error().Err(err).Msg("Unknown tab in strict mode, quitting")
		m.state.err = err
		m.teardown()

		return tea.Quit

	default:
		m.log.Warn().Err(err).Msg("Ignoring invalid screen transition")
		m.reporter.Capture(err, map[string]string{"subject": m.coin.UID})

		return nil
	}
}

// forwardToPages hands messages the screen does not know to every live page
func (m Model) forwardToPages(msg tea.Msg) tea.Cmd {
	pages := m.host.CurrentPages()
	if len(pages) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(pages))
	for _, page := range pages {
		cmds = append(cmds, page.Update(msg))
	}

	return tea.Batch(cmds...)
}

func wrap(index, n int) int {
	return (index%n + n) % n
}

func subjectOf(data interface{}) (string, bool) {
	switch d := data.(type) {
	case bus.TitleReady:
		return d.Subject, true
	case bus.FlagChanged:
		return d.Subject, true
	case bus.TabChanged:
		return d.Subject, true
	case bus.CollaboratorFailed:
		return d.Subject, true
	default:
		return "", false
	}
}

// waitForMsgCmd returns a command that waits for the next update
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// toastTickCmd returns a command that advances the toast after one frame
func toastTickCmd() tea.Cmd {
	return tea.Tick(components.ToastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
