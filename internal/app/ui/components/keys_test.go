package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{name: "Up", keys: km.Up.Keys(), want: []string{"up", "k"}},
		{name: "Down", keys: km.Down.Keys(), want: []string{"down", "j"}},
		{name: "PrevTab", keys: km.PrevTab.Keys(), want: []string{"left", "h"}},
		{name: "NextTab", keys: km.NextTab.Keys(), want: []string{"right", "l"}},
		{name: "Favorite", keys: km.Favorite.Keys(), want: []string{"f"}},
		{name: "Alerts", keys: km.Alerts.Keys(), want: []string{"n"}},
		{name: "Apply", keys: km.Apply.Keys(), want: []string{"enter"}},
		{name: "Back", keys: km.Back.Keys(), want: []string{"esc", "backspace"}},
		{name: "Quit", keys: km.Quit.Keys(), want: []string{"q"}},
		{name: "ForceQuit", keys: km.ForceQuit.Keys(), want: []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.want {
				assert.Contains(t, tt.keys, k)
			}
		})
	}
}
