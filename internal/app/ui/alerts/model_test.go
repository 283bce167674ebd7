package alerts

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

func Test_New(t *testing.T) {
	tests := []struct {
		name     string
		current  Setting
		expected Setting
	}{
		{name: "Off", current: Setting{}, expected: Setting{}},
		{name: "Known threshold", current: Setting{Change: 5, Trend: true}, expected: Setting{Change: 5, Trend: true}},
		{name: "Unknown threshold falls back to off", current: Setting{Change: 7}, expected: Setting{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("bitcoin", "Bitcoin", tt.current)
			assert.Equal(t, tt.expected, m.Setting())
			assert.Equal(t, "bitcoin", m.Subject())
		})
	}
}

func Test_Model_ChangeThreshold(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{})

	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 2, m.Setting().Change)

	m, _ = press(m, tea.KeyRight)
	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 10, m.Setting().Change)

	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 0, m.Setting().Change)

	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, 10, m.Setting().Change)
}

func Test_Model_ToggleTrend(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{})

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyRight)
	assert.True(t, m.Setting().Trend)
	assert.Equal(t, 0, m.Setting().Change)

	m, _ = press(m, tea.KeyUp)
	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 2, m.Setting().Change)
	assert.True(t, m.Setting().Trend)
}

func Test_Model_Apply(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{Change: 2})

	_, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, AppliedMsg{Subject: "bitcoin", Setting: Setting{Change: 2}}, cmd())
}

func Test_Model_Back(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{})

	_, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)

	assert.Equal(t, ClosedMsg{Subject: "bitcoin"}, cmd())
}

func Test_Model_IgnoresOtherMessages(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, m.Setting(), next.Setting())
}

func Test_Model_View(t *testing.T) {
	m := New("bitcoin", "Bitcoin", Setting{Change: 5, Trend: true})
	view := m.View()

	assert.Contains(t, view, "Alerts for Bitcoin")
	assert.Contains(t, view, "±5%")
	assert.Contains(t, view, "on")
}

func Test_Setting_Active(t *testing.T) {
	assert.False(t, Setting{}.Active())
	assert.True(t, Setting{Change: 2}.Active())
	assert.True(t, Setting{Trend: true}.Active())
}
