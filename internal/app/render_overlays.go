package app

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/theme"
	"github.com/foliodesk/folio/internal/window"
)

// renderBackdrop returns the full-screen desktop background: a dark field
// with a sparse dot grid. The string is rebuilt only when the canvas
// resizes; between resizes the cached copy is reused every frame.
func (m *Desktop) renderBackdrop() *lipgloss.Layer {
	if m.backdrop == "" || m.backdropWidth != m.Width || m.backdropHeight != m.Height {
		dot := config.GetDesktopDot()

		var b strings.Builder
		for y := range m.Height {
			if y > 0 {
				b.WriteString("\n")
			}
			for x := range m.Width {
				if y%2 == 1 && x%4 == 2 {
					b.WriteString(dot)
				} else {
					b.WriteString(" ")
				}
			}
		}

		m.backdrop = lipgloss.NewStyle().
			Foreground(theme.DesktopDot()).
			Background(theme.DesktopBg()).
			Render(b.String())
		m.backdropWidth = m.Width
		m.backdropHeight = m.Height
	}

	return lipgloss.NewLayer(m.backdrop).
		X(0).Y(0).Z(config.ZIndexDesktop).
		ID("desktop")
}

// dockItem is one laid-out dock entry: the app it launches and the cell
// span it occupies. The same layout drives rendering and click routing.
type dockItem struct {
	appID string
	x     int
	width int
}

func dockNumber(i int) string {
	return fmt.Sprintf(" %d ", i+1)
}

func dockName(w *window.Window) string {
	glyph := w.Glyph
	if config.UseASCIIOnly {
		glyph = w.ASCIIGlyph
	}
	return glyph + " " + w.AppID + " "
}

// dockLayout computes dock entries left to right in registration order.
// Entry i always describes m.Registry.Windows()[i].
func (m *Desktop) dockLayout() []dockItem {
	windows := m.Registry.Windows()
	items := make([]dockItem, 0, len(windows))
	x := 1
	for i, w := range windows {
		width := ansi.StringWidth(dockNumber(i)) + ansi.StringWidth(dockName(w))
		items = append(items, dockItem{appID: w.AppID, x: x, width: width})
		x += width + 2 // separator gap
	}
	return items
}

// DockItemAt returns the app whose dock entry covers the given canvas
// cell, if any.
func (m *Desktop) DockItemAt(x, y int) (string, bool) {
	if config.HideDock || y < m.Height-config.DockHeight || y >= m.Height {
		return "", false
	}
	for _, item := range m.dockLayout() {
		if x >= item.x && x < item.x+item.width {
			return item.appID, true
		}
	}
	return "", false
}

// renderDock renders the two-row dock strip: numbered app entries on the
// first row, open markers centered beneath the visible apps on the
// second.
func (m *Desktop) renderDock() *lipgloss.Layer {
	bg := theme.DockBg()
	fill := lipgloss.NewStyle().Background(bg)

	numberColor := theme.DockAccent()
	if m.Dimmed {
		numberColor = theme.DockDimmed()
	}
	numberStyle := lipgloss.NewStyle().Foreground(numberColor).Background(bg).Bold(true)

	separator := "│ "
	if config.UseASCIIOnly {
		separator = "| "
	}
	separatorStyle := lipgloss.NewStyle().Foreground(theme.DockSeparator()).Background(bg)

	windows := m.Registry.Windows()
	items := m.dockLayout()

	var row strings.Builder
	row.WriteString(fill.Render(" "))
	used := 1
	for i, w := range windows {
		if i > 0 {
			row.WriteString(separatorStyle.Render(separator))
			used += 2
		}

		nameColor := theme.DockDimmed()
		bold := false
		switch {
		case m.Dimmed:
			// Idle dimming flattens every entry.
		case w.Focused && w.Visible():
			nameColor = theme.DockHighlight()
			bold = true
		case w.Visible():
			nameColor = theme.DockFg()
		}

		row.WriteString(numberStyle.Render(dockNumber(i)))
		row.WriteString(lipgloss.NewStyle().
			Foreground(nameColor).
			Background(bg).
			Bold(bold).
			Render(dockName(w)))
		used += items[i].width
	}
	if used < m.Width {
		row.WriteString(fill.Render(strings.Repeat(" ", m.Width-used)))
	}
	itemRow := row.String()
	if used > m.Width {
		itemRow = ansi.Truncate(itemRow, m.Width, "") + "\x1b[0m"
	}

	marker := []rune(config.GetDockIndicatorOpen())[0]
	cells := make([]rune, max(m.Width, 0))
	for i := range cells {
		cells[i] = ' '
	}
	for i, w := range windows {
		if !w.Visible() {
			continue
		}
		mx := items[i].x + items[i].width/2
		if mx >= 0 && mx < len(cells) {
			cells[mx] = marker
		}
	}
	markerColor := theme.DockAccent()
	if m.Dimmed {
		markerColor = theme.DockDimmed()
	}
	markerRow := lipgloss.NewStyle().
		Foreground(markerColor).
		Background(bg).
		Render(string(cells))

	return lipgloss.NewLayer(itemRow + "\n" + markerRow).
		X(0).Y(m.Height - config.DockHeight).Z(config.ZIndexDock).
		ID("dock")
}

// renderClock renders the HH:MM clock in the top-right corner.
func (m *Desktop) renderClock() *lipgloss.Layer {
	fg := theme.ClockFg()
	if m.Dimmed {
		fg = theme.DockDimmed()
	}

	clock := lipgloss.NewStyle().
		Foreground(fg).
		Background(theme.ClockBg()).
		Bold(true).
		Padding(0, 1).
		Render(time.Now().Format("15:04"))

	x := max(m.Width-config.ClockWidth-1, 0)
	return lipgloss.NewLayer(clock).
		X(x).Y(0).Z(config.ZIndexClock).
		ID("clock")
}

var welcomeArt = []string{
	"███████╗ ██████╗ ██╗     ██╗ ██████╗ ",
	"██╔════╝██╔═══██╗██║     ██║██╔═══██╗",
	"█████╗  ██║   ██║██║     ██║██║   ██║",
	"██╔══╝  ██║   ██║██║     ██║██║   ██║",
	"██║     ╚██████╔╝███████╗██║╚██████╔╝",
	"╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝ ",
}

// renderWelcome renders the empty-desktop banner shown while no window
// is visible.
func (m *Desktop) renderWelcome() *lipgloss.Layer {
	title := strings.Join(welcomeArt, "\n")
	if config.UseASCIIOnly {
		title = "f o l i o"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.HintFg()).Bold(true).Render(title),
		"",
		lipgloss.NewStyle().Foreground(theme.DockFg()).Render("a desktop for your terminal"),
		"",
		lipgloss.NewStyle().Foreground(theme.DockDimmed()).Render("click a dock item or press 1-9 to open an app"),
	)

	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.DockDimmed()).
		Padding(1, 4).
		Render(content)

	x := max((m.Width-lipgloss.Width(box))/2, 0)
	y := max((m.UsableHeight()-lipgloss.Height(box))/2, 0)
	clipped, x, y := clipToViewport(box, x, y, m.Width, m.Height)

	return lipgloss.NewLayer(clipped).
		X(x).Y(y).Z(1).
		ID("welcome")
}

// renderNotifications renders up to three toast layers stacked below the
// clock on the right edge, newest first.
func (m *Desktop) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for i, n := range m.Notifications {
		if i >= 3 {
			break
		}

		accent := theme.NotificationInfo()
		switch n.Type {
		case "error":
			accent = theme.NotificationError()
		case "warning":
			accent = theme.NotificationWarning()
		case "success":
			accent = theme.NotificationSuccess()
		}

		maxWidth := min(max(m.Width-8, 20), 60)
		message := n.Message
		if ansi.StringWidth(message) > maxWidth-6 {
			message = ansi.Truncate(message, maxWidth-6, "...")
		}

		bar := "▌"
		if config.UseASCIIOnly {
			bar = "|"
		}

		accentStyle := lipgloss.NewStyle().Foreground(accent).Background(theme.NotificationBg())
		toast := accentStyle.Render(bar) +
			accentStyle.Bold(true).Render(config.GetNotificationIcon(n.Type)) +
			lipgloss.NewStyle().
				Foreground(theme.NotificationFg()).
				Background(theme.NotificationBg()).
				Render(" "+message+" ")

		x := max(m.Width-lipgloss.Width(toast)-2, 0)
		y := 2 + i*2
		layers = append(layers, lipgloss.NewLayer(toast).
			X(x).Y(y).Z(config.ZIndexNotification).
			ID(fmt.Sprintf("notif-%s", n.ID)))
	}
	return layers
}

// renderOverlays assembles the chrome layers drawn above every window.
func (m *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if !config.HideClock {
		layers = append(layers, m.renderClock())
	}

	anyVisible := false
	for _, w := range m.Registry.Windows() {
		if w.Visible() {
			anyVisible = true
			break
		}
	}
	if !anyVisible && m.Width > 0 && m.Height > 0 {
		layers = append(layers, m.renderWelcome())
	}

	layers = append(layers, m.renderNotifications()...)
	return layers
}
