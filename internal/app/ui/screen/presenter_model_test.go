package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coinscope/internal/app/ui/components"
)

// collect runs cmd and flattens batches into the messages they produce
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}

	return msgs
}

func Test_TeaPresenter_Drain_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newTeaPresenter(testLogger(ctrl))

	assert.Nil(t, p.drain())
}

func Test_TeaPresenter_ShowError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newTeaPresenter(testLogger(ctrl))
	p.ShowError("Failed to update watchlist")

	msgs := collect(p.drain())
	require.Len(t, msgs, 1)
	assert.Equal(t, toastMsg{text: "Failed to update watchlist", kind: components.ToastError}, msgs[0])

	assert.Nil(t, p.drain(), "drain clears pending commands")
}

func Test_TeaPresenter_Requests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newTeaPresenter(testLogger(ctrl))
	p.OpenNotificationMenu("bitcoin", "Bitcoin")
	p.ShowConfirmation(AddedToWatchlist)
	p.NavigateBack()

	msgs := collect(p.drain())
	assert.ElementsMatch(t, []tea.Msg{
		openAlertsMsg{subject: "bitcoin", label: "Bitcoin"},
		toastMsg{text: AddedToWatchlist, kind: components.ToastInfo},
		backMsg{},
	}, msgs)
}
