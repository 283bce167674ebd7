package screen

import (
	"github.com/charmbracelet/bubbles/key"

	"coinscope/internal/app/ui/components"
)

// KeyMap defines the key bindings for the detail screen
type KeyMap struct {
	components.KeyMap
	Tab key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.PrevTab.SetHelp("←/→", "tabs")

	return KeyMap{
		KeyMap: base,
		Tab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.Tab, k.Favorite, k.Alerts, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.Tab},
		{k.Favorite, k.Alerts, k.Back, k.Quit, k.ForceQuit},
	}
}

// forState adapts help texts and availability to the current affordances
func (k KeyMap) forState(s State) KeyMap {
	if s.Favorite.ShowUnfavorite {
		k.Favorite.SetHelp("f", "unwatch")
	}

	k.Alerts.SetEnabled(s.Notification.Visible)

	return k
}
