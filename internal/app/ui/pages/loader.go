package pages

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/ui/components"
)

// Loader holds the spinner shown while a page loads its data
type Loader struct {
	Model   spinner.Model
	Active  bool
	message string
}

// NewLoader creates an active loader with the given message
func NewLoader(message string) Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = components.SpinnerStyle

	return Loader{Model: s, Active: true, message: message}
}

// Stop hides the loader, pending spinner ticks are dropped
func (l *Loader) Stop() {
	l.Active = false
}

// Update advances the spinner while the loader is active
func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	if !l.Active {
		return nil
	}

	var cmd tea.Cmd
	l.Model, cmd = l.Model.Update(msg)

	return cmd
}

// View renders the spinner with its message
func (l Loader) View() string {
	return l.Model.View() + " " + l.message
}

// load runs done after delay unless ctx is cancelled first
func load(ctx context.Context, delay time.Duration, done func() tea.Msg) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return done()
		}
	}
}
