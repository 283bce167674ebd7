//go:generate mockgen -source=registry.go -destination=registry_mock.go -package=tabs
package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"coinscope/internal/app/errors"
)

// ID identifies a tab
type ID string

// Tabs of the coin detail screen
const (
	Overview ID = "overview"
	Markets  ID = "markets"
)

// String returns the string representation of the tab id
func (id ID) String() string {
	return string(id)
}

// Page is the content rendered for one tab
type Page interface {
	// Init starts the page's own deferred work (data loading, subscriptions)
	Init() tea.Cmd
	// Update lets the page react to messages it started
	Update(msg tea.Msg) tea.Cmd
	// View renders the page into the given area
	View(width, height int) string
	// Close stops the page's work, called once when the screen goes away
	Close()
}

// Factory builds a page, it must be cheap; expensive work belongs in Page.Init
type Factory func() Page

// Descriptor describes one tab: its id, display label and page factory
type Descriptor struct {
	ID      ID
	Label   string
	Factory Factory
}

// Registry is the fixed, ordered set of tabs of a screen
type Registry interface {
	Tabs() []Descriptor
	Len() int
	IndexOf(id ID) (int, error)
	Lookup(id ID) (Descriptor, error)
	At(index int) (Descriptor, bool)
}

type registry struct {
	tabs  []Descriptor
	index map[ID]int
}

// NewRegistry creates an immutable registry from the descriptors, in order
func NewRegistry(descriptors ...Descriptor) (Registry, error) {
	if len(descriptors) == 0 {
		return nil, errors.ErrEmptyRegistry
	}

	r := &registry{
		tabs:  make([]Descriptor, len(descriptors)),
		index: make(map[ID]int, len(descriptors)),
	}

	for i, d := range descriptors {
		if _, exists := r.index[d.ID]; exists {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrDuplicateTab, d.ID)
		}

		r.tabs[i] = d
		r.index[d.ID] = i
	}

	return r, nil
}

// Tabs returns a copy of the ordered descriptors
func (r *registry) Tabs() []Descriptor {
	out := make([]Descriptor, len(r.tabs))
	copy(out, r.tabs)

	return out
}

func (r *registry) Len() int {
	return len(r.tabs)
}

// IndexOf returns the position of a tab or ErrUnknownTab
func (r *registry) IndexOf(id ID) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: '%s'", errors.ErrUnknownTab, id)
	}

	return i, nil
}

// Lookup returns the descriptor of a tab or ErrUnknownTab
func (r *registry) Lookup(id ID) (Descriptor, error) {
	i, err := r.IndexOf(id)
	if err != nil {
		return Descriptor{}, err
	}

	return r.tabs[i], nil
}

// At returns the descriptor at a position
func (r *registry) At(index int) (Descriptor, bool) {
	if index < 0 || index >= len(r.tabs) {
		return Descriptor{}, false
	}

	return r.tabs[index], true
}
