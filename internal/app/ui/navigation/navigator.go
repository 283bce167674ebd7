package navigation

// Navigator keeps the stack of views shown on top of the detail screen
type Navigator interface {
	// CurrentView returns the active view
	CurrentView() View
	// Push opens a view on top of the current one
	Push(view View)
	// Back pops the current view, false means the root was reached and the screen should close
	Back() bool
	// Depth returns the number of views on the stack
	Depth() int
}

type navigator struct {
	stack []View
}

// NewNavigator creates a new navigator starting with the detail view
func NewNavigator() Navigator {
	return &navigator{
		stack: []View{ViewDetail},
	}
}

func (n *navigator) CurrentView() View {
	return n.stack[len(n.stack)-1]
}

func (n *navigator) Push(view View) {
	if n.CurrentView() == view {
		return
	}

	n.stack = append(n.stack, view)
}

func (n *navigator) Back() bool {
	if len(n.stack) == 1 {
		return false
	}

	n.stack = n.stack[:len(n.stack)-1]

	return true
}

func (n *navigator) Depth() int {
	return len(n.stack)
}
