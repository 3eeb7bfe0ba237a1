package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/theme"
	"github.com/foliodesk/folio/internal/window"
)

// GetCanvas composes the full desktop frame: backdrop, windows in
// z-order, the dock, and the overlays.
func (m *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	layers := []*lipgloss.Layer{m.renderBackdrop()}

	for _, w := range m.Registry.Windows() {
		if !w.Visible() {
			continue
		}
		layers = append(layers, m.renderWindow(w))
	}

	if !config.HideDock {
		layers = append(layers, m.renderDock())
	}
	layers = append(layers, m.renderOverlays()...)

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// View returns the composed frame.
func (m *Desktop) View() tea.View {
	var view tea.View

	// Fast path: return cached content when frame-skip determined nothing
	// changed since the last render.
	if m.renderSkipped && m.cachedViewContent != "" {
		view.SetContent(m.cachedViewContent)
	} else {
		content := lipgloss.Sprint(m.GetCanvas().Render())
		m.cachedViewContent = content
		view.SetContent(content)
	}

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true

	return view
}

// renderWindow renders one window layer. A window mid-transition draws as
// a scaled border-only frame above every settled window.
func (m *Desktop) renderWindow(w *window.Window) *lipgloss.Layer {
	if w.State == window.StateOpening || w.State == window.StateClosing {
		return m.renderTransitionFrame(w)
	}

	content := m.renderChrome(w)
	clipped, x, y := clipToViewport(content, w.Left(), w.Top(), m.Width, m.Height)
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(w.Z).ID(w.AppID)
}

// renderTransitionFrame draws the eased scale frame for a window that is
// opening or closing. Before the transition record exists (the yield
// frame) the window draws at the zero-progress rect.
func (m *Desktop) renderTransitionFrame(w *window.Window) *lipgloss.Layer {
	t := m.Transition
	if t == nil || t.AppID != w.AppID {
		kind := window.TransitionOpen
		if w.State == window.StateClosing {
			kind = window.TransitionClose
		}
		t = window.NewTransition(w.AppID, kind, m.TransitionSeq, time.Time{}, config.TransitionDuration)
	}

	x, y, width, height := t.FrameRect(w)
	frame := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.BorderAnimating()).
		Width(width).
		Height(height).
		Render("")

	clipped, fx, fy := clipToViewport(frame, x, y, m.Width, m.Height)
	return lipgloss.NewLayer(clipped).X(fx).Y(fy).Z(config.ZIndexAnimating).ID(w.AppID)
}
