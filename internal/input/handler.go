// Package input routes keyboard and mouse events to desktop actions.
//
// Keyboard input belongs to the shell while the terminal window holds
// focus; everything else drives the desktop directly.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/app"
)

// HandleInput is the input coordinator installed into the app package at
// startup. The update loop delegates every input message here.
func HandleInput(msg tea.Msg, m *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, m)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	case tea.PasteMsg:
		return handlePaste(msg, m)
	default:
		// Wheel and other input events are consumed; they only reset
		// the idle dimmer, which the update loop already handled.
		return m, nil
	}
}

// handlePaste inserts bracketed-paste text into the shell input line when
// the terminal window is focused. Pastes anywhere else are dropped.
func handlePaste(msg tea.PasteMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	if m.TerminalFocused() {
		m.Shell.InsertText(msg.Content)
	}
	return m, nil
}
