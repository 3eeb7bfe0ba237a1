package window

// OpenDecision reports what an open request did.
type OpenDecision int

const (
	// OpenMissing means no window exists for the requested app.
	OpenMissing OpenDecision = iota
	// OpenRefocused means the window was already open and was raised instead.
	OpenRefocused
	// OpenBusy means another transition held the animation lock and the
	// request was dropped.
	OpenBusy
	// OpenStarted means the open transition began and the lock is now held.
	OpenStarted
)

// CloseDecision reports what a close request did.
type CloseDecision int

const (
	// CloseMissing means no window exists for the requested app.
	CloseMissing CloseDecision = iota
	// CloseNotOpen means the window was not fully open.
	CloseNotOpen
	// CloseBusy means another transition held the animation lock and the
	// request was dropped.
	CloseBusy
	// CloseStarted means the close transition began and the lock is now held.
	CloseStarted
)

// Registry owns every desktop window together with the two pieces of
// state shared across all of them: the z-order counter and the
// animation lock. One transition may be in flight system-wide. The
// registry belongs to the update loop and is not safe for concurrent
// use.
type Registry struct {
	windows  map[string]*Window
	order    []string // Registration order, drives dock layout
	zCounter int
	locked   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]*Window)}
}

// Register adds a window to the registry. Windows start closed.
// Registering the same app ID again replaces the earlier window.
func (r *Registry) Register(w *Window) {
	if _, exists := r.windows[w.AppID]; !exists {
		r.order = append(r.order, w.AppID)
	}
	r.windows[w.AppID] = w
}

// Get returns the window for an app ID.
func (r *Registry) Get(appID string) (*Window, bool) {
	w, ok := r.windows[appID]
	return w, ok
}

// Windows returns every registered window in registration order.
func (r *Registry) Windows() []*Window {
	out := make([]*Window, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.windows[id])
	}
	return out
}

// Focused returns the currently focused window, if any.
func (r *Registry) Focused() (*Window, bool) {
	for _, id := range r.order {
		if w := r.windows[id]; w.Focused {
			return w, true
		}
	}
	return nil, false
}

// WindowAt returns the topmost visible window containing the screen
// cell (x, y), or nil when the point hits the bare desktop.
func (r *Registry) WindowAt(x, y int) *Window {
	var top *Window
	for _, id := range r.order {
		w := r.windows[id]
		if !w.Visible() || !w.Contains(x, y) {
			continue
		}
		if top == nil || w.Z > top.Z {
			top = w
		}
	}
	return top
}

// Locked reports whether a window transition currently holds the
// animation lock.
func (r *Registry) Locked() bool {
	return r.locked
}

// Focus raises a window to the top of the stack and gives it keyboard
// focus. Focusing the window that already holds focus is a no-op, so
// the z counter only advances when the stacking order actually changes.
func (r *Registry) Focus(appID string) {
	w, ok := r.windows[appID]
	if !ok || w.Focused {
		return
	}
	r.zCounter++
	w.Z = r.zCounter
	w.Focused = true
	for id, other := range r.windows {
		if id != appID {
			other.Focused = false
		}
	}
}

// BeginOpen starts the open transition for an app. An already open
// window is raised instead, even while the animation lock is held.
// A request for a closed window while the lock is held is dropped
// silently, without queueing.
func (r *Registry) BeginOpen(appID string) OpenDecision {
	w, ok := r.windows[appID]
	if !ok {
		return OpenMissing
	}
	if w.State == StateOpen {
		r.Focus(appID)
		return OpenRefocused
	}
	if r.locked {
		return OpenBusy
	}
	r.locked = true
	r.Focus(appID)
	w.State = StateOpening
	return OpenStarted
}

// FinishOpen marks an opening window fully open. The animation lock
// stays held until Unlock runs after the settle delay. Returns false
// when the window is not mid-open, which happens when a stale
// completion message lands after a watchdog recovery.
func (r *Registry) FinishOpen(appID string) bool {
	w, ok := r.windows[appID]
	if !ok || w.State != StateOpening {
		return false
	}
	w.State = StateOpen
	return true
}

// Unlock releases the animation lock. Open transitions call this after
// the settle delay that follows FinishOpen.
func (r *Registry) Unlock() {
	r.locked = false
}

// BeginClose starts the close transition for an app. Requests for
// windows that are not fully open, and requests arriving while the
// animation lock is held, are dropped silently. Focus clears at the
// start of the transition and does not move to another window.
func (r *Registry) BeginClose(appID string) CloseDecision {
	w, ok := r.windows[appID]
	if !ok {
		return CloseMissing
	}
	if w.State != StateOpen {
		return CloseNotOpen
	}
	if r.locked {
		return CloseBusy
	}
	r.locked = true
	w.State = StateClosing
	w.Focused = false
	return CloseStarted
}

// FinishClose marks a closing window fully closed and releases the
// animation lock immediately. There is no settle delay on close.
// Returns false when the window is not mid-close.
func (r *Registry) FinishClose(appID string) bool {
	w, ok := r.windows[appID]
	if !ok || w.State != StateClosing {
		return false
	}
	w.State = StateClosed
	r.locked = false
	return true
}
