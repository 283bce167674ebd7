package navigation

// View represents the current view in the UI
type View int

const (
	ViewDetail View = iota
	ViewAlerts
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewDetail:
		return "detail"
	case ViewAlerts:
		return "alerts"
	default:
		return "unknown"
	}
}
