// Package window provides the desktop window model, lifecycle registry,
// and transition math.
package window

import (
	"github.com/foliodesk/folio/internal/config"
)

// State identifies where a window is in its open/close lifecycle.
type State int

const (
	// StateClosed means the window is not on the desktop.
	StateClosed State = iota
	// StateOpening means the open transition is in flight.
	StateOpening
	// StateOpen means the window is fully open and interactive.
	StateOpen
	// StateClosing means the close transition is in flight.
	StateClosing
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// Window represents one desktop application window.
// Position is anchored at the window midpoint so drag clamping and
// transition frames stay symmetric around the same point.
type Window struct {
	AppID      string // Stable identifier, one window per app
	Title      string
	Glyph      string // Dock icon
	ASCIIGlyph string // Dock icon when unicode is unavailable
	State      State
	Z          int // Stacking order, assigned by the registry, never reused
	Focused    bool
	CenterX    int // Midpoint in screen cells
	CenterY    int
	Width      int
	Height     int
}

// Visible reports whether the window occupies the desktop in any
// lifecycle state, including mid-transition.
func (w *Window) Visible() bool {
	return w.State != StateClosed
}

// Left returns the leftmost column of the window frame.
func (w *Window) Left() int {
	return w.CenterX - w.Width/2
}

// Top returns the topmost row of the window frame.
func (w *Window) Top() int {
	return w.CenterY - w.Height/2
}

// Right returns the column one past the window's right edge.
func (w *Window) Right() int {
	return w.Left() + w.Width
}

// Bottom returns the row one past the window's bottom edge.
func (w *Window) Bottom() int {
	return w.Top() + w.Height
}

// Contains reports whether the screen cell (x, y) falls inside the
// window frame.
func (w *Window) Contains(x, y int) bool {
	return x >= w.Left() && x < w.Right() && y >= w.Top() && y < w.Bottom()
}

// OnTitleBar reports whether (x, y) is on the window's title row.
func (w *Window) OnTitleBar(x, y int) bool {
	return y == w.Top() && x >= w.Left() && x < w.Right()
}

// OnCloseButton reports whether (x, y) hits the close button, which
// occupies the cells just inside the top-right corner of the title row.
func (w *Window) OnCloseButton(x, y int) bool {
	if y != w.Top() {
		return false
	}
	end := w.Right() - 1
	return x >= end-config.CloseButtonSpan && x < end
}

// ClampCenter clamps a candidate midpoint so the full window frame stays
// on the desktop. The dock strip at the bottom of the screen is kept
// clear. When the window is larger than the available area the top-left
// edge wins.
func (w *Window) ClampCenter(cx, cy, screenW, screenH int) (int, int) {
	minCX := w.Width / 2
	maxCX := screenW - (w.Width - w.Width/2)
	minCY := w.Height / 2
	maxCY := screenH - config.ReservedBottomRows - (w.Height - w.Height/2)
	return clamp(cx, minCX, maxCX), clamp(cy, minCY, maxCY)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
