package window

import "time"

// TransitionKind distinguishes open from close transitions.
type TransitionKind int

const (
	// TransitionOpen grows the window frame into place.
	TransitionOpen TransitionKind = iota
	// TransitionClose shrinks the frame away.
	TransitionClose
)

// startScale is the fraction of the final frame size an opening window
// starts at. Closing windows shrink back to the same fraction before
// they disappear.
const startScale = 0.55

// Transition frames never shrink below a drawable border box.
const (
	minFrameWidth  = 4
	minFrameHeight = 3
)

// Transition tracks one in-flight open or close animation. Progress is
// recomputed from the frame ticker in the update loop, so View stays a
// pure function of model state.
type Transition struct {
	AppID     string
	Kind      TransitionKind
	Seq       int // Guards against stale completion and settle messages
	StartedAt time.Time
	Duration  time.Duration
	Progress  float64 // 0 at the start of the edge, 1 when complete
}

// NewTransition starts a transition clock at now.
func NewTransition(appID string, kind TransitionKind, seq int, now time.Time, duration time.Duration) *Transition {
	return &Transition{
		AppID:     appID,
		Kind:      kind,
		Seq:       seq,
		StartedAt: now,
		Duration:  duration,
	}
}

// Advance recomputes progress at the given instant and reports whether
// the transition has completed. A zero duration completes immediately,
// which is how disabled animations collapse to instant open and close.
func (t *Transition) Advance(now time.Time) bool {
	if t.Duration <= 0 {
		t.Progress = 1
		return true
	}
	elapsed := now.Sub(t.StartedAt)
	if elapsed >= t.Duration {
		t.Progress = 1
		return true
	}
	if elapsed < 0 {
		t.Progress = 0
		return false
	}
	t.Progress = float64(elapsed) / float64(t.Duration)
	return false
}

// Scale returns the frame scale factor for the current progress. Open
// transitions grow toward 1, close transitions shrink away from it.
func (t *Transition) Scale() float64 {
	eased := easeOutCubic(t.Progress)
	if t.Kind == TransitionClose {
		eased = 1 - eased
	}
	return startScale + (1-startScale)*eased
}

// FrameRect returns the on-screen rect for a window mid-transition,
// scaled around the window midpoint.
func (t *Transition) FrameRect(w *Window) (x, y, width, height int) {
	scale := t.Scale()
	width = max(int(float64(w.Width)*scale+0.5), minFrameWidth)
	height = max(int(float64(w.Height)*scale+0.5), minFrameHeight)
	width = min(width, w.Width)
	height = min(height, w.Height)
	x = w.CenterX - width/2
	y = w.CenterY - height/2
	return x, y, width, height
}

// easeOutCubic maps linear progress onto the decelerating curve used by
// the window transitions.
func easeOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}
