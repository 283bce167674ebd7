package components

import "time"

// UI timing constants
const (
	// ToastTickInterval is the frame interval of the toast animation
	ToastTickInterval = 50 * time.Millisecond

	// ToastFPS is derived from the tick interval
	ToastFPS = int(time.Second / ToastTickInterval)
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Screen layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	// ChromeHeight is the number of rows taken by header, tab bar, toast and footer
	ChromeHeight  = 7
	MinPageHeight = 3
)

// Toast animation constants
const (
	toastAngularFrequency = 7.0
	toastDampingRatio     = 0.6
	toastSlideDistance    = 12
	toastHiddenThreshold  = 0.05
	toastPositionShown    = 1.0
	toastPositionHidden   = 0.0
)
