package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewNavigator(t *testing.T) {
	nav := NewNavigator()
	assert.NotNil(t, nav)
	assert.Equal(t, ViewDetail, nav.CurrentView())
	assert.Equal(t, 1, nav.Depth())
}

func Test_Navigator_Push(t *testing.T) {
	tests := []struct {
		name          string
		pushes        []View
		expectedView  View
		expectedDepth int
	}{
		{name: "Push alerts", pushes: []View{ViewAlerts}, expectedView: ViewAlerts, expectedDepth: 2},
		{name: "Push current view is a no-op", pushes: []View{ViewDetail}, expectedView: ViewDetail, expectedDepth: 1},
		{name: "Push alerts twice", pushes: []View{ViewAlerts, ViewAlerts}, expectedView: ViewAlerts, expectedDepth: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator()
			for _, v := range tt.pushes {
				nav.Push(v)
			}

			assert.Equal(t, tt.expectedView, nav.CurrentView())
			assert.Equal(t, tt.expectedDepth, nav.Depth())
		})
	}
}

func Test_Navigator_Back(t *testing.T) {
	nav := NewNavigator()
	nav.Push(ViewAlerts)

	assert.True(t, nav.Back())
	assert.Equal(t, ViewDetail, nav.CurrentView())

	assert.False(t, nav.Back())
	assert.Equal(t, ViewDetail, nav.CurrentView())
	assert.Equal(t, 1, nav.Depth())
}

func Test_View_String(t *testing.T) {
	tests := []struct {
		view     View
		expected string
	}{
		{view: ViewDetail, expected: "detail"},
		{view: ViewAlerts, expected: "alerts"},
		{view: View(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}
