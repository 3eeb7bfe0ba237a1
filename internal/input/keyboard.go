package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/app"
)

// HandleKeyPress routes keyboard input. The shell consumes keys while the
// terminal window is focused, except for the focus cycle and the
// emergency quit.
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	if m.TerminalFocused() {
		return handleShellKey(msg, m)
	}
	return handleDesktopKey(msg, m)
}

// handleShellKey feeds keys to the shell's input line.
func handleShellKey(msg tea.KeyPressMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m, m.Shell.SubmitInput()
	case "backspace":
		m.Shell.Backspace()
		return m, nil
	case "up":
		m.Shell.RecallPrev()
		return m, nil
	case "down":
		m.Shell.RecallNext()
		return m, nil
	case "tab":
		m.FocusNext()
		return m, nil
	}

	// Plain printable input goes into the line. Ctrl and alt chords are
	// not commands here, so they fall through to nothing.
	if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
		m.Shell.InsertText(msg.Text)
	}
	return m, nil
}

// handleDesktopKey handles desktop-level shortcuts while no terminal is
// focused.
func handleDesktopKey(msg tea.KeyPressMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.FocusNext()
		return m, nil
	case "x":
		return m, m.CloseFocused()
	case "?":
		return m, m.OpenWindow("about")
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m, m.OpenByIndex(int(key[0] - '1'))
	default:
		return m, nil
	}
}
