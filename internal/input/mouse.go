package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/window"
)

// handleMouseClick routes a click: dock entries launch apps, the close
// button closes, the title bar starts a drag, and any window hit raises
// focus. Clicks on empty desktop are consumed.
func handleMouseClick(msg tea.MouseClickMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	if appID, ok := m.DockItemAt(mouse.X, mouse.Y); ok {
		return m, m.Launch(appID)
	}
	if !config.HideDock && mouse.Y >= m.Height-config.DockHeight {
		// Dock strip clicks outside an entry do nothing.
		return m, nil
	}

	w := m.Registry.WindowAt(mouse.X, mouse.Y)
	if w == nil {
		return m, nil
	}

	if w.OnCloseButton(mouse.X, mouse.Y) {
		return m, m.CloseWindow(w.AppID)
	}

	m.Registry.Focus(w.AppID)

	// Only a settled window can be dragged; a frame mid-transition
	// ignores the title bar.
	if w.State == window.StateOpen && w.OnTitleBar(mouse.X, mouse.Y) {
		m.Drag = &app.DragSession{
			AppID:   w.AppID,
			OffsetX: mouse.X - w.CenterX,
			OffsetY: mouse.Y - w.CenterY,
		}
	}
	return m, nil
}

// handleMouseMotion moves the dragged window, keeping the grab point
// under the pointer and the frame clamped onto the desktop.
func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	if m.Drag == nil {
		return m, nil
	}

	w, ok := m.Registry.Get(m.Drag.AppID)
	if !ok || w.State != window.StateOpen {
		// The window left the desktop mid-drag; the session dies with it.
		m.Drag = nil
		return m, nil
	}

	mouse := msg.Mouse()
	w.CenterX, w.CenterY = w.ClampCenter(
		mouse.X-m.Drag.OffsetX,
		mouse.Y-m.Drag.OffsetY,
		m.Width, m.Height,
	)
	return m, nil
}

// handleMouseRelease ends the drag session, if one is active.
func handleMouseRelease(_ tea.MouseReleaseMsg, m *app.Desktop) (tea.Model, tea.Cmd) {
	m.Drag = nil
	return m, nil
}
