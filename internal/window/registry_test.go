package window

import "testing"

func testRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Window{AppID: "about", Title: "About", Width: 40, Height: 12, CenterX: 40, CenterY: 10})
	r.Register(&Window{AppID: "projects", Title: "Projects", Width: 40, Height: 12, CenterX: 42, CenterY: 12})
	r.Register(&Window{AppID: "contact", Title: "Contact", Width: 40, Height: 12, CenterX: 44, CenterY: 14})
	return r
}

// openFully walks a window through the complete open sequence,
// including the settle unlock.
func openFully(t *testing.T, r *Registry, appID string) {
	t.Helper()
	if got := r.BeginOpen(appID); got != OpenStarted {
		t.Fatalf("BeginOpen(%q) = %v, want %v", appID, got, OpenStarted)
	}
	if !r.FinishOpen(appID) {
		t.Fatalf("FinishOpen(%q) returned false", appID)
	}
	r.Unlock()
}

func TestRegistry_OpenCycle(t *testing.T) {
	r := testRegistry()

	if got := r.BeginOpen("about"); got != OpenStarted {
		t.Fatalf("BeginOpen = %v, want %v", got, OpenStarted)
	}
	w, _ := r.Get("about")
	if w.State != StateOpening {
		t.Errorf("state = %v, want %v", w.State, StateOpening)
	}
	if !w.Focused {
		t.Error("opening window should receive focus")
	}
	if !r.Locked() {
		t.Error("lock should be held during the open transition")
	}

	if !r.FinishOpen("about") {
		t.Fatal("FinishOpen returned false")
	}
	if w.State != StateOpen {
		t.Errorf("state = %v, want %v", w.State, StateOpen)
	}
	if !r.Locked() {
		t.Error("lock should stay held until the settle delay elapses")
	}

	r.Unlock()
	if r.Locked() {
		t.Error("lock should be released after settle")
	}
}

func TestRegistry_CloseCycle(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")

	if got := r.BeginClose("about"); got != CloseStarted {
		t.Fatalf("BeginClose = %v, want %v", got, CloseStarted)
	}
	w, _ := r.Get("about")
	if w.State != StateClosing {
		t.Errorf("state = %v, want %v", w.State, StateClosing)
	}
	if w.Focused {
		t.Error("focus should clear when the close transition starts")
	}
	if !r.Locked() {
		t.Error("lock should be held during the close transition")
	}

	if !r.FinishClose("about") {
		t.Fatal("FinishClose returned false")
	}
	if w.State != StateClosed {
		t.Errorf("state = %v, want %v", w.State, StateClosed)
	}
	if r.Locked() {
		t.Error("close should release the lock immediately, with no settle")
	}
}

func TestRegistry_OpenMissingApp(t *testing.T) {
	r := testRegistry()

	if got := r.BeginOpen("nope"); got != OpenMissing {
		t.Fatalf("BeginOpen = %v, want %v", got, OpenMissing)
	}
	if r.Locked() {
		t.Error("missing app must not acquire the lock")
	}
	if _, ok := r.Focused(); ok {
		t.Error("missing app must not move focus")
	}
}

func TestRegistry_OpenDroppedWhileLocked(t *testing.T) {
	r := testRegistry()

	// First open holds the lock until its transition completes.
	if got := r.BeginOpen("about"); got != OpenStarted {
		t.Fatalf("BeginOpen(about) = %v, want %v", got, OpenStarted)
	}

	if got := r.BeginOpen("projects"); got != OpenBusy {
		t.Fatalf("BeginOpen(projects) = %v, want %v", got, OpenBusy)
	}
	w, _ := r.Get("projects")
	if w.State != StateClosed {
		t.Errorf("dropped open must leave the window closed, got %v", w.State)
	}
	focused, ok := r.Focused()
	if !ok || focused.AppID != "about" {
		t.Error("dropped open must not move focus")
	}
}

func TestRegistry_ReopenRefocuses(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")
	openFully(t, r, "projects")

	about, _ := r.Get("about")
	projects, _ := r.Get("projects")
	if about.Z >= projects.Z {
		t.Fatalf("projects opened last, want Z above about (about=%d projects=%d)", about.Z, projects.Z)
	}

	if got := r.BeginOpen("about"); got != OpenRefocused {
		t.Fatalf("BeginOpen = %v, want %v", got, OpenRefocused)
	}
	if about.State != StateOpen {
		t.Errorf("refocus must not restart the lifecycle, got %v", about.State)
	}
	if !about.Focused || projects.Focused {
		t.Error("refocused window should hold the unique focus")
	}
	if about.Z <= projects.Z {
		t.Errorf("refocus should raise the window, got about=%d projects=%d", about.Z, projects.Z)
	}
	if r.Locked() {
		t.Error("refocus must not acquire the lock")
	}
}

func TestRegistry_RefocusWorksWhileLocked(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")

	// Projects is mid-open and holds the lock.
	if got := r.BeginOpen("projects"); got != OpenStarted {
		t.Fatalf("BeginOpen(projects) = %v, want %v", got, OpenStarted)
	}

	// Raising an already open window bypasses the busy check.
	if got := r.BeginOpen("about"); got != OpenRefocused {
		t.Fatalf("BeginOpen(about) = %v, want %v", got, OpenRefocused)
	}
	about, _ := r.Get("about")
	if !about.Focused {
		t.Error("about should be focused after refocus")
	}
	if !r.Locked() {
		t.Error("refocus must leave the in-flight transition's lock alone")
	}
}

func TestRegistry_CloseNotOpen(t *testing.T) {
	r := testRegistry()

	// Close on an already closed window changes nothing.
	if got := r.BeginClose("about"); got != CloseNotOpen {
		t.Fatalf("BeginClose = %v, want %v", got, CloseNotOpen)
	}
	w, _ := r.Get("about")
	if w.State != StateClosed {
		t.Errorf("state = %v, want %v", w.State, StateClosed)
	}
	if r.Locked() {
		t.Error("dropped close must not acquire the lock")
	}

	if got := r.BeginClose("nope"); got != CloseMissing {
		t.Fatalf("BeginClose(nope) = %v, want %v", got, CloseMissing)
	}

	// A window mid-open is not Open yet, so close is dropped too.
	if got := r.BeginOpen("about"); got != OpenStarted {
		t.Fatal("BeginOpen failed")
	}
	if got := r.BeginClose("about"); got != CloseNotOpen {
		t.Fatalf("BeginClose mid-open = %v, want %v", got, CloseNotOpen)
	}
}

func TestRegistry_CloseDroppedWhileLocked(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")

	if got := r.BeginOpen("projects"); got != OpenStarted {
		t.Fatalf("BeginOpen(projects) = %v, want %v", got, OpenStarted)
	}

	if got := r.BeginClose("about"); got != CloseBusy {
		t.Fatalf("BeginClose = %v, want %v", got, CloseBusy)
	}
	about, _ := r.Get("about")
	if about.State != StateOpen {
		t.Errorf("dropped close must leave the window open, got %v", about.State)
	}
}

func TestRegistry_FocusUniqueness(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")
	openFully(t, r, "projects")
	openFully(t, r, "contact")

	for _, id := range []string{"projects", "about", "about", "contact", "projects"} {
		r.Focus(id)
		focusedCount := 0
		for _, w := range r.Windows() {
			if w.Focused {
				focusedCount++
			}
		}
		if focusedCount != 1 {
			t.Fatalf("after Focus(%q): %d focused windows, want 1", id, focusedCount)
		}
		focused, _ := r.Focused()
		if focused.AppID != id {
			t.Fatalf("after Focus(%q): focused = %q", id, focused.AppID)
		}
	}
}

func TestRegistry_ZOrderMonotonic(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")
	openFully(t, r, "projects")

	about, _ := r.Get("about")
	projects, _ := r.Get("projects")

	prev := projects.Z
	r.Focus("about")
	if about.Z <= prev {
		t.Fatalf("focus must assign a Z above every earlier value, got %d (prev %d)", about.Z, prev)
	}

	// Focusing the focused window must not burn a counter value.
	zBefore := about.Z
	r.Focus("about")
	if about.Z != zBefore {
		t.Errorf("refocusing the focused window changed Z from %d to %d", zBefore, about.Z)
	}

	r.Focus("projects")
	if projects.Z <= about.Z {
		t.Errorf("focus must keep the counter strictly increasing, got %d after %d", projects.Z, about.Z)
	}
}

func TestRegistry_StaleCompletionsIgnored(t *testing.T) {
	r := testRegistry()

	if r.FinishOpen("about") {
		t.Error("FinishOpen on a closed window should report false")
	}
	if r.FinishClose("about") {
		t.Error("FinishClose on a closed window should report false")
	}

	openFully(t, r, "about")
	if r.FinishOpen("about") {
		t.Error("FinishOpen on an open window should report false")
	}
}

func TestRegistry_CloseLeavesNoFocus(t *testing.T) {
	r := testRegistry()
	openFully(t, r, "about")
	openFully(t, r, "projects")

	if got := r.BeginClose("projects"); got != CloseStarted {
		t.Fatalf("BeginClose = %v, want %v", got, CloseStarted)
	}
	r.FinishClose("projects")

	// Focus does not fall back to another window on close.
	if _, ok := r.Focused(); ok {
		t.Error("no window should inherit focus after a close")
	}
	about, _ := r.Get("about")
	if about.Focused {
		t.Error("about should stay unfocused after projects closes")
	}
}

func TestRegistry_WindowAt(t *testing.T) {
	r := NewRegistry()
	r.Register(&Window{AppID: "back", Width: 20, Height: 10, CenterX: 20, CenterY: 10})
	r.Register(&Window{AppID: "front", Width: 20, Height: 10, CenterX: 24, CenterY: 12})

	openFully(t, r, "back")
	openFully(t, r, "front")

	// (22, 10) lies inside both frames; the higher Z wins.
	if w := r.WindowAt(22, 10); w == nil || w.AppID != "front" {
		t.Errorf("WindowAt(22,10) = %v, want front", w)
	}

	r.Focus("back")
	if w := r.WindowAt(22, 10); w == nil || w.AppID != "back" {
		t.Errorf("WindowAt(22,10) after refocus = %v, want back", w)
	}

	if w := r.WindowAt(0, 0); w != nil {
		t.Errorf("WindowAt(0,0) = %v, want nil", w)
	}

	// Closed windows are never hit.
	r.BeginClose("back")
	r.FinishClose("back")
	r.Focus("front")
	if w := r.WindowAt(14, 8); w != nil && w.AppID == "back" {
		t.Error("closed window should not receive hits")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(&Window{AppID: "about", Title: "About"})
	r.Register(&Window{AppID: "about", Title: "About v2"})

	if got := len(r.Windows()); got != 1 {
		t.Fatalf("len(Windows) = %d, want 1", got)
	}
	w, _ := r.Get("about")
	if w.Title != "About v2" {
		t.Errorf("Title = %q, want the replacement", w.Title)
	}
}
