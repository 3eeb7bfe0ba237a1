package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/window"
)

func TestNewDesktopRegistersCatalog(t *testing.T) {
	m := NewDesktop(120, 40)

	ws := m.Registry.Windows()
	wantOrder := []string{"about", "projects", "contact", "stats", "terminal"}
	if len(ws) != len(wantOrder) {
		t.Fatalf("len(Windows) = %d, want %d", len(ws), len(wantOrder))
	}
	for i, id := range wantOrder {
		if ws[i].AppID != id {
			t.Errorf("dock position %d = %q, want %q", i, ws[i].AppID, id)
		}
		if ws[i].State != window.StateClosed {
			t.Errorf("%s starts in state %v, want %v", id, ws[i].State, window.StateClosed)
		}
	}
	if m.Shell == nil {
		t.Fatal("shell not wired")
	}
	if _, ok := m.Registry.Focused(); ok {
		t.Error("no window should start focused")
	}
}

func TestDefaultLayoutCascades(t *testing.T) {
	m := NewDesktop(120, 40)

	ws := m.Registry.Windows()
	for i := 1; i < len(ws); i++ {
		if ws[i].CenterX <= ws[i-1].CenterX {
			t.Errorf("window %d center x = %d, want above %d", i, ws[i].CenterX, ws[i-1].CenterX)
		}
	}
	for _, w := range ws {
		if w.Left() < 0 || w.Top() < 0 {
			t.Errorf("%s default position out of bounds: left=%d top=%d", w.AppID, w.Left(), w.Top())
		}
	}
}

func TestResizeKeepsDraggedPositions(t *testing.T) {
	m := NewDesktop(120, 40)
	openFully(t, m, "about")

	w, _ := m.Registry.Get("about")
	w.CenterX, w.CenterY = 100, 30

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	if w.CenterX != 100 || w.CenterY != 30 {
		t.Errorf("resize moved a dragged window to (%d,%d)", w.CenterX, w.CenterY)
	}

	// Shrinking pulls the window back inside the new bounds.
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	if w.Right() > 60 {
		t.Errorf("window right edge %d exceeds width 60", w.Right())
	}

	// Closed windows are re-cascaded around the new center.
	projects, _ := m.Registry.Get("projects")
	if projects.CenterX != 60/2+1*config.CascadeStep {
		t.Errorf("closed window center x = %d, want cascade default", projects.CenterX)
	}
}

func TestReopenKeepsLastPosition(t *testing.T) {
	m := NewDesktop(120, 40)
	openFully(t, m, "about")

	w, _ := m.Registry.Get("about")
	w.CenterX, w.CenterY = 90, 25

	m.CloseWindow("about")
	m.Update(transitionStartMsg{appID: "about", seq: m.TransitionSeq})
	m.Update(transitionDoneMsg{seq: m.TransitionSeq})

	openFully(t, m, "about")
	if w.CenterX != 90 || w.CenterY != 25 {
		t.Errorf("reopened at (%d,%d), want the dragged position", w.CenterX, w.CenterY)
	}
}

func TestUsableHeight(t *testing.T) {
	m := NewDesktop(120, 40)
	if got := m.UsableHeight(); got != 40-config.DockHeight {
		t.Errorf("UsableHeight = %d, want %d", got, 40-config.DockHeight)
	}

	m.Height = 1
	if got := m.UsableHeight(); got != 0 {
		t.Errorf("UsableHeight on a tiny terminal = %d, want 0", got)
	}
}

func TestOpenByIndex(t *testing.T) {
	m := NewDesktop(120, 40)

	if cmd := m.OpenByIndex(0); cmd == nil {
		t.Fatal("OpenByIndex(0) returned no command")
	}
	w, _ := m.Registry.Get("about")
	if w.State != window.StateOpening {
		t.Errorf("state = %v, want %v", w.State, window.StateOpening)
	}

	if cmd := m.OpenByIndex(9); cmd != nil {
		t.Error("out-of-range index should be a no-op")
	}
	if cmd := m.OpenByIndex(-1); cmd != nil {
		t.Error("negative index should be a no-op")
	}
}

func TestFocusNextCyclesInDockOrder(t *testing.T) {
	m := NewDesktop(120, 40)

	m.FocusNext() // Nothing open yet.
	if _, ok := m.Registry.Focused(); ok {
		t.Fatal("FocusNext with no open windows moved focus")
	}

	openFully(t, m, "about")
	openFully(t, m, "projects")
	openFully(t, m, "contact")

	// Focus sits on contact, the last opened. The cycle wraps to the
	// first open window in dock order.
	for _, want := range []string{"about", "projects", "contact", "about"} {
		m.FocusNext()
		f, ok := m.Registry.Focused()
		if !ok || f.AppID != want {
			t.Fatalf("FocusNext focused %v, want %s", f, want)
		}
	}
}

func TestFocusNextSkipsTransitioningWindows(t *testing.T) {
	m := NewDesktop(120, 40)
	openFully(t, m, "about")

	m.OpenWindow("projects") // Mid-open, not StateOpen yet.
	m.FocusNext()
	f, ok := m.Registry.Focused()
	if !ok || f.AppID != "about" {
		t.Errorf("focused %v, want about", f)
	}
}

func TestCloseFocused(t *testing.T) {
	m := NewDesktop(120, 40)

	if cmd := m.CloseFocused(); cmd != nil {
		t.Error("CloseFocused with no focus should be a no-op")
	}

	openFully(t, m, "about")
	if cmd := m.CloseFocused(); cmd == nil {
		t.Fatal("CloseFocused returned no command")
	}
	w, _ := m.Registry.Get("about")
	if w.State != window.StateClosing {
		t.Errorf("state = %v, want %v", w.State, window.StateClosing)
	}
}

func TestTerminalFocused(t *testing.T) {
	m := NewDesktop(120, 40)
	if m.TerminalFocused() {
		t.Error("TerminalFocused with no focus")
	}

	openFully(t, m, "terminal")
	if !m.TerminalFocused() {
		t.Error("terminal window is focused but TerminalFocused is false")
	}

	openFully(t, m, "about")
	if m.TerminalFocused() {
		t.Error("about is focused but TerminalFocused is true")
	}
}

func TestLauncherContract(t *testing.T) {
	m := NewDesktop(120, 40)

	if !m.Has("about") || m.Has("nope") {
		t.Error("Has should match only catalog apps")
	}
	if cmd := m.Launch("about"); cmd == nil {
		t.Error("Launch of a closed app should start a transition")
	}
}

func TestLogRingTrims(t *testing.T) {
	m := NewDesktop(120, 40)

	for i := range config.MaxLogMessages + 10 {
		m.LogInfo("entry %d", i)
	}
	if len(m.LogMessages) != config.MaxLogMessages {
		t.Fatalf("len(LogMessages) = %d, want %d", len(m.LogMessages), config.MaxLogMessages)
	}
	last := m.LogMessages[len(m.LogMessages)-1]
	if last.Message != "entry 109" {
		t.Errorf("newest entry = %q, want entry 109", last.Message)
	}
}

func TestShowNotificationMirrorsToLog(t *testing.T) {
	m := NewDesktop(120, 40)

	m.ShowNotification("disk full", "error", time.Second)
	if len(m.Notifications) != 1 {
		t.Fatalf("len(Notifications) = %d, want 1", len(m.Notifications))
	}
	if m.Notifications[0].ID == "" {
		t.Error("notification should carry an id")
	}
	last := m.LogMessages[len(m.LogMessages)-1]
	if last.Level != "ERROR" || last.Message != "disk full" {
		t.Errorf("mirrored log entry = %+v", last)
	}
}

func TestCleanupNotificationsDropsExpired(t *testing.T) {
	m := NewDesktop(120, 40)

	m.ShowNotification("old", "info", time.Millisecond)
	m.ShowNotification("fresh", "info", time.Minute)
	m.Notifications[0].StartTime = time.Now().Add(-time.Second)

	m.CleanupNotifications()
	if len(m.Notifications) != 1 || m.Notifications[0].Message != "fresh" {
		t.Errorf("Notifications after cleanup = %+v", m.Notifications)
	}
}

func TestDockItemAtMatchesLayout(t *testing.T) {
	m := NewDesktop(120, 40)

	items := m.dockLayout()
	if len(items) != 5 {
		t.Fatalf("len(dockLayout) = %d, want 5", len(items))
	}

	y := m.Height - 1
	for _, item := range items {
		for _, x := range []int{item.x, item.x + item.width - 1} {
			got, ok := m.DockItemAt(x, y)
			if !ok || got != item.appID {
				t.Errorf("DockItemAt(%d,%d) = %q,%v, want %q", x, y, got, ok, item.appID)
			}
		}
		// The separator cell past the entry hits nothing.
		if _, ok := m.DockItemAt(item.x+item.width, y); ok {
			t.Errorf("DockItemAt(%d,%d) hit inside the gap", item.x+item.width, y)
		}
	}

	if _, ok := m.DockItemAt(items[0].x, m.Height-config.DockHeight-1); ok {
		t.Error("DockItemAt above the dock strip should miss")
	}

	config.HideDock = true
	defer func() { config.HideDock = false }()
	if _, ok := m.DockItemAt(items[0].x, y); ok {
		t.Error("a hidden dock should not take hits")
	}
}

func TestStatsWindowVisible(t *testing.T) {
	m := NewDesktop(120, 40)
	if m.statsWindowVisible() {
		t.Error("stats visible before any open")
	}

	// Mid-transition already counts as visible.
	m.OpenWindow("stats")
	if !m.statsWindowVisible() {
		t.Error("stats window opening but not reported visible")
	}
}
