package screen

import (
	"context"

	"github.com/looplab/fsm"

	"coinscope/internal/app/ui/tabs"
	"coinscope/internal/app/ui/toggle"
	"coinscope/internal/config/logger"
)

// Favorite FSM states
const (
	Unfavorited = "unfavorited"
	Favorited   = "favorited"
)

// Favorite FSM events
const (
	Favorite   = "favorite"
	Unfavorite = "unfavorite"
)

// Lifecycle FSM states
const (
	Active   = "active"
	TornDown = "torn_down"
)

// Lifecycle FSM events
const (
	Teardown = "teardown"
)

// TabItem is one entry of the tab bar
type TabItem struct {
	ID       tabs.ID
	Label    string
	Selected bool
}

// State is a snapshot of everything the screen shows
type State struct {
	Subject              string
	SelectedTab          tabs.ID
	SelectedIndex        int
	Title                string
	IsFavorite           bool
	NotificationEligible bool
	NotificationActive   bool
	Favorite             toggle.FavoriteAffordance
	Notification         toggle.NotificationAffordance
	Tabs                 []TabItem
	TornDown             bool
}

// Observer receives a fresh State after every transition
type Observer func(State)

// newFavoriteFSM creates the watchlist state machine; only confirmed external values drive it
func newFavoriteFSM(subject string, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Unfavorited,
		fsm.Events{
			{Name: Favorite, Src: []string{Unfavorited, Favorited}, Dst: Favorited},
			{Name: Unfavorite, Src: []string{Unfavorited, Favorited}, Dst: Unfavorited},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("FAVORITE %s: %s → %s (trigger: %s)", subject, e.Src, e.Dst, e.Event)
			},
		},
	)
}

// newLifecycleFSM creates the screen lifecycle state machine
func newLifecycleFSM(subject string, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Active,
		fsm.Events{
			{Name: Teardown, Src: []string{Active}, Dst: TornDown},
		},
		fsm.Callbacks{
			"enter_" + TornDown: func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("SCREEN %s: torn down", subject)
			},
		},
	)
}
