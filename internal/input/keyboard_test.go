package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/window"
)

// settleOpen moves a window straight to the settled Open state through
// the registry, skipping the timed choreography.
func settleOpen(t *testing.T, m *app.Desktop, appID string) {
	t.Helper()
	if got := m.Registry.BeginOpen(appID); got != window.OpenStarted {
		t.Fatalf("BeginOpen(%q) = %v, want %v", appID, got, window.OpenStarted)
	}
	if !m.Registry.FinishOpen(appID) {
		t.Fatalf("FinishOpen(%q) returned false", appID)
	}
	m.Registry.Unlock()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDigitsLaunchDockEntries(t *testing.T) {
	m := app.NewDesktop(120, 40)

	_, cmd := HandleKeyPress(tea.KeyPressMsg{Code: '3', Text: "3"}, m)
	if cmd == nil {
		t.Fatal("digit press should start an open transition")
	}
	w, _ := m.Registry.Get("contact")
	if w.State != window.StateOpening {
		t.Errorf("contact state = %v, want %v", w.State, window.StateOpening)
	}

	// Digits past the catalog are ignored.
	if _, cmd := HandleKeyPress(tea.KeyPressMsg{Code: '9', Text: "9"}, m); cmd != nil {
		t.Error("digit past the dock should be a no-op")
	}
}

func TestQuitKeys(t *testing.T) {
	m := app.NewDesktop(120, 40)

	if _, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'q', Text: "q"}, m); !isQuit(cmd) {
		t.Error("q on the desktop should quit")
	}
	if _, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, m); !isQuit(cmd) {
		t.Error("ctrl+c on the desktop should quit")
	}

	// With the terminal focused, q types and ctrl+c still quits.
	settleOpen(t, m, "terminal")
	if _, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'q', Text: "q"}, m); isQuit(cmd) {
		t.Error("q should type into the focused shell, not quit")
	}
	if m.Shell.Input != "q" {
		t.Errorf("shell input = %q, want %q", m.Shell.Input, "q")
	}
	if _, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, m); !isQuit(cmd) {
		t.Error("ctrl+c should quit even while the shell is focused")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := app.NewDesktop(120, 40)
	settleOpen(t, m, "about")
	settleOpen(t, m, "projects")

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyTab}, m)
	f, ok := m.Registry.Focused()
	if !ok || f.AppID != "about" {
		t.Fatalf("focused = %v, want about", f)
	}

	// Tab still cycles when the shell is focused.
	settleOpen(t, m, "terminal")
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyTab}, m)
	if f, _ := m.Registry.Focused(); f.AppID == "terminal" {
		t.Error("tab should cycle focus away from the terminal")
	}
	if m.Shell.Input != "" {
		t.Errorf("tab leaked into the shell input: %q", m.Shell.Input)
	}
}

func TestXClosesFocusedWindow(t *testing.T) {
	m := app.NewDesktop(120, 40)
	settleOpen(t, m, "about")

	_, cmd := HandleKeyPress(tea.KeyPressMsg{Code: 'x', Text: "x"}, m)
	if cmd == nil {
		t.Fatal("x should start the close transition")
	}
	w, _ := m.Registry.Get("about")
	if w.State != window.StateClosing {
		t.Errorf("state = %v, want %v", w.State, window.StateClosing)
	}
}

func TestQuestionMarkOpensAbout(t *testing.T) {
	m := app.NewDesktop(120, 40)

	HandleKeyPress(tea.KeyPressMsg{Code: '?', Text: "?"}, m)
	w, _ := m.Registry.Get("about")
	if w.State != window.StateOpening {
		t.Errorf("state = %v, want %v", w.State, window.StateOpening)
	}
}

func TestShellEditingKeys(t *testing.T) {
	m := app.NewDesktop(120, 40)
	settleOpen(t, m, "terminal")

	for _, c := range "date" {
		HandleKeyPress(tea.KeyPressMsg{Code: c, Text: string(c)}, m)
	}
	if m.Shell.Input != "date" {
		t.Fatalf("shell input = %q, want %q", m.Shell.Input, "date")
	}

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyBackspace}, m)
	if m.Shell.Input != "dat" {
		t.Errorf("after backspace input = %q, want %q", m.Shell.Input, "dat")
	}

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEnter}, m)
	if m.Shell.Input != "" {
		t.Errorf("submit should clear the input, got %q", m.Shell.Input)
	}
	if len(m.Shell.Output) == 0 {
		t.Fatal("submit should echo into the output log")
	}

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyUp}, m)
	if m.Shell.Input != "dat" {
		t.Errorf("recall = %q, want %q", m.Shell.Input, "dat")
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyDown}, m)
	if m.Shell.Input != "" {
		t.Errorf("recall past the end should clear, got %q", m.Shell.Input)
	}
}

func TestChordsDoNotType(t *testing.T) {
	m := app.NewDesktop(120, 40)
	settleOpen(t, m, "terminal")

	HandleKeyPress(tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt, Text: "1"}, m)
	if m.Shell.Input != "" {
		t.Errorf("alt chord typed %q into the shell", m.Shell.Input)
	}

	// Shifted text is ordinary typing.
	HandleKeyPress(tea.KeyPressMsg{Code: 'a', Mod: tea.ModShift, Text: "A"}, m)
	if m.Shell.Input != "A" {
		t.Errorf("shell input = %q, want %q", m.Shell.Input, "A")
	}
}

func TestPasteGoesToFocusedShell(t *testing.T) {
	m := app.NewDesktop(120, 40)

	HandleInput(tea.PasteMsg{Content: "open stats"}, m)
	if m.Shell.Input != "" {
		t.Error("paste with no focused terminal should be dropped")
	}

	settleOpen(t, m, "terminal")
	HandleInput(tea.PasteMsg{Content: "open stats"}, m)
	if m.Shell.Input != "open stats" {
		t.Errorf("shell input = %q, want %q", m.Shell.Input, "open stats")
	}
}
