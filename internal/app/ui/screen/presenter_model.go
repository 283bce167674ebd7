package screen

import (
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/ui/components"
	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/config/logger"
)

// openAlertsMsg asks the model to open the alerts modal
type openAlertsMsg struct {
	subject string
	label   string
}

// toastMsg asks the model to show a transient message
type toastMsg struct {
	text string
	kind components.ToastKind
}

// backMsg asks the model to pop the current view
type backMsg struct{}

// teaPresenter turns coordinator requests into commands run by the bubbletea loop
type teaPresenter struct {
	cmds []tea.Cmd
	log  logger.Logger
}

func newTeaPresenter(log logger.Logger) *teaPresenter {
	return &teaPresenter{log: log}
}

func (p *teaPresenter) TabSelected(id tabs.ID) {
	p.log.Info().Msgf("Tab '%s' selected", id)
}

func (p *teaPresenter) PageCreated(id tabs.ID, page tabs.Page) {
	p.log.Debug().Msgf("Starting page '%s'", id)
	p.cmds = append(p.cmds, page.Init())
}

func (p *teaPresenter) OpenNotificationMenu(subject, label string) {
	p.cmds = append(p.cmds, func() tea.Msg { return openAlertsMsg{subject: subject, label: label} })
}

func (p *teaPresenter) ShowConfirmation(text string) {
	p.cmds = append(p.cmds, func() tea.Msg { return toastMsg{text: text, kind: components.ToastInfo} })
}

// ShowError surfaces a collaborator failure as an error toast
func (p *teaPresenter) ShowError(text string) {
	p.cmds = append(p.cmds, func() tea.Msg { return toastMsg{text: text, kind: components.ToastError} })
}

func (p *teaPresenter) NavigateBack() {
	p.cmds = append(p.cmds, func() tea.Msg { return backMsg{} })
}

// drain returns the pending commands as one batch
func (p *teaPresenter) drain() tea.Cmd {
	if len(p.cmds) == 0 {
		return nil
	}

	cmds := p.cmds
	p.cmds = nil

	return tea.Batch(cmds...)
}
