package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// ToastKind selects the toast style
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// Toast is a transient, non-blocking message that slides in on a spring and leaves on its own
type Toast struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	text      string
	kind      ToastKind
	remaining int
}

// NewToast creates a hidden toast
func NewToast() *Toast {
	return &Toast{
		spring:   harmonica.NewSpring(harmonica.FPS(ToastFPS), toastAngularFrequency, toastDampingRatio),
		position: toastPositionHidden,
		target:   toastPositionHidden,
	}
}

// Show replaces the current message and keeps it up for the given duration
func (t *Toast) Show(text string, kind ToastKind, duration time.Duration) {
	t.text = text
	t.kind = kind
	t.target = toastPositionShown

	t.remaining = int(duration / ToastTickInterval)
	if t.remaining < 1 {
		t.remaining = 1
	}
}

// Update advances the animation by one frame and reports whether more frames are needed
func (t *Toast) Update() bool {
	if t.text == "" {
		return false
	}

	if t.remaining > 0 {
		t.remaining--
		if t.remaining == 0 {
			t.target = toastPositionHidden
		}
	}

	t.position, t.velocity = t.spring.Update(t.position, t.velocity, t.target)

	if t.target == toastPositionHidden && t.position < toastHiddenThreshold {
		t.reset()
		return false
	}

	return true
}

// Visible reports whether a message is on screen
func (t *Toast) Visible() bool {
	return t.text != ""
}

// Text returns the current message
func (t *Toast) Text() string {
	return t.text
}

// Kind returns the current message kind
func (t *Toast) Kind() ToastKind {
	return t.kind
}

// Render returns the message offset by the slide animation
func (t *Toast) Render() string {
	if t.text == "" {
		return ""
	}

	offset := int((toastPositionShown - t.position) * toastSlideDistance)
	if offset < 0 {
		offset = 0
	}

	if offset > toastSlideDistance {
		offset = toastSlideDistance
	}

	style := ToastStyle
	if t.kind == ToastError {
		style = ToastErrorStyle
	}

	return strings.Repeat(" ", offset) + style.Render(t.text)
}

func (t *Toast) reset() {
	t.text = ""
	t.kind = ToastInfo
	t.position = toastPositionHidden
	t.velocity = toastPositionHidden
	t.target = toastPositionHidden
	t.remaining = 0
}
