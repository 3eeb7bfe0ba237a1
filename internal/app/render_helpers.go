package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/foliodesk/folio/internal/apps"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/shell"
	"github.com/foliodesk/folio/internal/stats"
	"github.com/foliodesk/folio/internal/theme"
	"github.com/foliodesk/folio/internal/window"
)

// renderChrome renders a settled window: title bar, bordered body, bottom
// border. The result is exactly Width x Height cells.
func (m *Desktop) renderChrome(w *window.Window) string {
	borderColor := theme.BorderUnfocused()
	if w.Focused {
		borderColor = theme.BorderFocused()
	}

	body := clipBody(m.renderBody(w), w.Width-2, w.Height-2)

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(config.GetBorderForStyle()).
		BorderTop(false).
		BorderForeground(borderColor).
		Background(theme.WindowBg()).
		Width(w.Width).
		Height(w.Height - 1).
		Render(body)

	return renderTitleBar(w, borderColor) + "\n" + box
}

// renderTitleBar builds the window's top border line: glyph and title on
// the left, the close button occupying the cells just before the right
// corner. The close button span matches the mouse hit region.
func renderTitleBar(w *window.Window, borderColor color.Color) string {
	border := config.GetBorderForStyle()
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	titleColor := theme.TitleFg()
	if !w.Focused {
		titleColor = theme.TitleDimmed()
	}

	glyph := w.Glyph
	if config.UseASCIIOnly {
		glyph = w.ASCIIGlyph
	}
	label := " " + glyph + " " + w.Title + " "

	inner := w.Width - 2
	maxLabel := max(inner-config.CloseButtonSpan, 0)
	if ansi.StringWidth(label) > maxLabel {
		label = ansi.Truncate(label, maxLabel, "")
	}
	fill := inner - ansi.StringWidth(label) - config.CloseButtonSpan

	return borderStyle.Render(border.TopLeft) +
		lipgloss.NewStyle().Foreground(titleColor).Render(label) +
		borderStyle.Render(strings.Repeat(border.Top, max(fill, 0))) +
		lipgloss.NewStyle().Foreground(theme.CloseButtonFg()).Render(config.GetWindowButtonClose()) +
		borderStyle.Render(border.TopRight)
}

// renderBody renders a window's inner content by catalog kind.
func (m *Desktop) renderBody(w *window.Window) string {
	a := m.catalog[w.AppID]
	switch a.Kind {
	case apps.KindTerminal:
		return m.renderShellBody(w.Width-2, w.Height-2)
	case apps.KindStats:
		return m.renderStatsBody(w.Width - 2)
	default:
		return m.renderMarkdownBody(a, w.Width-2)
	}
}

// renderMarkdownBody returns the glamour-rendered body for a markdown
// app. Bodies are static, so renders are cached per app.
func (m *Desktop) renderMarkdownBody(a apps.App, width int) string {
	if cached, ok := m.markdownCache[a.ID]; ok {
		return cached
	}
	rendered, err := apps.RenderMarkdown(a.Body, width)
	if err != nil {
		rendered = a.Body
	}
	m.markdownCache[a.ID] = rendered
	return rendered
}

// renderShellBody lays out the shell log with the prompt line pinned at
// the bottom and the tail of the log kept visible above it.
func (m *Desktop) renderShellBody(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	promptStyle := lipgloss.NewStyle().Foreground(theme.ShellPrompt())
	textStyle := lipgloss.NewStyle().Foreground(theme.ShellText())
	echoStyle := lipgloss.NewStyle().Foreground(theme.ShellEcho())
	errorStyle := lipgloss.NewStyle().Foreground(theme.ShellError())

	var rows []string
	for _, line := range m.Shell.Output {
		var styled string
		switch line.Kind {
		case shell.LineEcho:
			// Echo lines reproduce the prompt line as it was typed.
			styled = promptStyle.Render(shell.Prompt()) + echoStyle.Render(line.Text)
		case shell.LineError:
			styled = errorStyle.Render(line.Text)
		default:
			styled = textStyle.Render(line.Text)
		}
		rows = append(rows, strings.Split(ansi.Hardwrap(styled, width, true), "\n")...)
	}

	// Sticky bottom: the newest output stays visible above the prompt.
	if len(rows) > height-1 {
		rows = rows[len(rows)-(height-1):]
	}

	prompt := shell.Prompt()
	input := m.Shell.Input
	avail := width - ansi.StringWidth(prompt) - 1
	if avail > 0 && ansi.StringWidth(input) > avail {
		// Keep the cursor end of a long input line in view.
		input = ansi.TruncateLeft(input, ansi.StringWidth(input)-avail, "")
	}
	cursor := "█"
	if config.UseASCIIOnly {
		cursor = "_"
	}
	rows = append(rows,
		promptStyle.Render(prompt)+
			textStyle.Render(input)+
			lipgloss.NewStyle().Foreground(theme.ShellCursor()).Render(cursor))

	return strings.Join(rows, "\n")
}

// renderStatsBody renders the host metrics panel.
func (m *Desktop) renderStatsBody(width int) string {
	if !m.HasStats {
		return lipgloss.NewStyle().Foreground(theme.StatsLabel()).Render("sampling host...")
	}
	return stats.Render(m.Stats, width)
}

// clipBody fits body content into a window's inner area, dropping extra
// rows and truncating long lines.
func clipBody(body string, width, height int) string {
	lines := strings.Split(body, "\n")
	if height < 1 || width < 1 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "") + "\x1b[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// clipToViewport trims content that extends past the right or bottom
// canvas edge so layers never wrap.
func clipToViewport(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	x = max(x, 0)
	y = max(y, 0)

	lines := strings.Split(content, "\n")
	if maxLines := viewportHeight - y; maxLines < len(lines) {
		if maxLines <= 0 {
			return "", x, y
		}
		lines = lines[:maxLines]
	}

	maxWidth := viewportWidth - x
	if maxWidth <= 0 {
		return "", x, y
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > maxWidth {
			lines[i] = ansi.Truncate(line, maxWidth, "") + "\x1b[0m"
		}
	}
	return strings.Join(lines, "\n"), x, y
}
