// Package app provides the core folio desktop model: window lifecycle
// choreography, the embedded shell, and rendering.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/apps"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/shell"
	"github.com/foliodesk/folio/internal/stats"
	"github.com/foliodesk/folio/internal/window"
)

// DragSession records an in-progress title-bar drag. At most one exists
// at a time; it lives from a qualifying press until the matching release.
type DragSession struct {
	AppID   string // Window being dragged
	OffsetX int    // Pointer offset from the window center, x axis
	OffsetY int    // Pointer offset from the window center, y axis
}

// Desktop represents the folio desktop state: the window registry, the
// shell, the in-flight transition, and everything the renderer draws.
type Desktop struct {
	Registry      *window.Registry   // Window set, lifecycle state, focus and z-order
	Shell         *shell.Shell       // Embedded command shell
	Width         int                // Terminal width in cells
	Height        int                // Terminal height in cells
	Transition    *window.Transition // In-flight open/close transition, nil when settled
	TransitionSeq int                // Sequence stamped on transition timers to drop stale ones
	Drag          *DragSession       // Active title-bar drag, nil when idle
	Stats         stats.Snapshot     // Last host sample shown by the stats app
	HasStats      bool               // True once Stats holds a real sample
	Notifications []Notification     // Active notification toasts
	LogMessages   []LogMessage       // Ring of recent log entries
	LastInputAt   time.Time          // Time of the last user input, drives idle dimming
	Dimmed        bool               // True while the dock and clock render dimmed

	catalog           map[string]apps.App // Catalog entry per app id
	markdownCache     map[string]string   // Rendered markdown bodies per app id
	statsInFlight     bool                // A host sample command is outstanding
	clockMinute       int                 // Minute currently shown by the clock
	idleFrames        int                 // Consecutive ticks with no visible change (for adaptive tick)
	renderSkipped     bool                // Last tick skipped re-rendering
	cachedViewContent string              // Cached frame served while renderSkipped
	backdrop          string              // Cached desktop backdrop
	backdropWidth     int                 // Size the cached backdrop was built for
	backdropHeight    int
}

// NewDesktop creates a desktop for the given terminal size and registers
// one window per catalog entry. All windows start closed; a zero size is
// fine, positions settle on the first WindowSizeMsg.
func NewDesktop(width, height int) *Desktop {
	m := &Desktop{
		Registry:      window.NewRegistry(),
		Width:         width,
		Height:        height,
		LastInputAt:   time.Now(),
		clockMinute:   -1,
		catalog:       make(map[string]apps.App),
		markdownCache: make(map[string]string),
	}
	m.Shell = shell.New(m)

	for _, a := range apps.Catalog() {
		m.catalog[a.ID] = a
		m.Registry.Register(&window.Window{
			AppID:      a.ID,
			Title:      a.Title,
			Glyph:      a.Glyph,
			ASCIIGlyph: a.ASCIIGlyph,
			Width:      a.Width,
			Height:     a.Height,
		})
	}
	m.applyLayout()
	return m
}

// applyLayout positions closed windows at their cascaded defaults and
// re-clamps visible windows into the current bounds. Visible windows keep
// the position the user dragged them to.
func (m *Desktop) applyLayout() {
	for i, w := range m.Registry.Windows() {
		if w.Visible() {
			w.CenterX, w.CenterY = w.ClampCenter(w.CenterX, w.CenterY, m.Width, m.Height)
			continue
		}
		cx := m.Width/2 + i*config.CascadeStep
		cy := m.UsableHeight()/2 + i
		w.CenterX, w.CenterY = w.ClampCenter(cx, cy, m.Width, m.Height)
	}
}

// UsableHeight returns the desktop rows above the dock strip.
func (m *Desktop) UsableHeight() int {
	return max(m.Height-config.DockHeight, 0)
}

// Has reports whether an application with the given id exists. Part of
// the shell's Launcher contract.
func (m *Desktop) Has(name string) bool {
	_, ok := m.Registry.Get(name)
	return ok
}

// Launch opens the named application. Part of the shell's Launcher
// contract; a busy registry drops the request silently.
func (m *Desktop) Launch(name string) tea.Cmd {
	return m.OpenWindow(name)
}

// OpenWindow applies the registry's open decision for the app and, when a
// transition actually starts, schedules the one-frame yield that kicks
// off the visual transition.
func (m *Desktop) OpenWindow(appID string) tea.Cmd {
	switch m.Registry.BeginOpen(appID) {
	case window.OpenStarted:
		m.TransitionSeq++
		m.LogInfo("opening %s", appID)
		return frameYieldCmd(appID, m.TransitionSeq)
	case window.OpenBusy:
		m.LogInfo("open %s dropped: transition in flight", appID)
	case window.OpenMissing:
		m.LogWarn("open %s: no such app", appID)
	case window.OpenRefocused:
		// The registry already re-raised focus.
	}
	return nil
}

// CloseWindow applies the registry's close decision for the app and, when
// a transition actually starts, schedules the frame yield.
func (m *Desktop) CloseWindow(appID string) tea.Cmd {
	switch m.Registry.BeginClose(appID) {
	case window.CloseStarted:
		m.TransitionSeq++
		m.LogInfo("closing %s", appID)
		return frameYieldCmd(appID, m.TransitionSeq)
	case window.CloseBusy:
		m.LogInfo("close %s dropped: transition in flight", appID)
	case window.CloseMissing, window.CloseNotOpen:
		// Silent no-op.
	}
	return nil
}

// CloseFocused closes the focused window, if any.
func (m *Desktop) CloseFocused() tea.Cmd {
	w, ok := m.Registry.Focused()
	if !ok {
		return nil
	}
	return m.CloseWindow(w.AppID)
}

// OpenByIndex launches the dock entry at the given zero-based position.
func (m *Desktop) OpenByIndex(i int) tea.Cmd {
	ws := m.Registry.Windows()
	if i < 0 || i >= len(ws) {
		return nil
	}
	return m.OpenWindow(ws[i].AppID)
}

// FocusNext cycles focus to the next open window in dock order.
func (m *Desktop) FocusNext() {
	var open []*window.Window
	for _, w := range m.Registry.Windows() {
		if w.State == window.StateOpen {
			open = append(open, w)
		}
	}
	if len(open) == 0 {
		return
	}
	next := open[0]
	for i, w := range open {
		if w.Focused {
			next = open[(i+1)%len(open)]
			break
		}
	}
	m.Registry.Focus(next.AppID)
}

// TerminalFocused reports whether the focused window hosts the shell, in
// which case keyboard input belongs to it.
func (m *Desktop) TerminalFocused() bool {
	w, ok := m.Registry.Focused()
	return ok && m.catalog[w.AppID].Kind == apps.KindTerminal
}

// statsWindowVisible reports whether a window showing host stats is on
// screen, including mid-transition.
func (m *Desktop) statsWindowVisible() bool {
	for _, w := range m.Registry.Windows() {
		if w.Visible() && m.catalog[w.AppID].Kind == apps.KindStats {
			return true
		}
	}
	return false
}
