package main

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/foliodesk/folio/internal/theme"
)

// previewThemeColors prints the desktop palette of a theme as swatch rows.
// Unknown theme names fall back to the default palette.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to load theme %q: %w", name, err)
	}

	rows := []struct {
		label string
		c     color.Color
	}{
		{"desktop", theme.DesktopBg()},
		{"desktop dot", theme.DesktopDot()},
		{"window", theme.WindowBg()},
		{"window text", theme.WindowFg()},
		{"border focused", theme.BorderFocused()},
		{"border unfocused", theme.BorderUnfocused()},
		{"title", theme.TitleFg()},
		{"dock", theme.DockBg()},
		{"dock accent", theme.DockAccent()},
		{"dock highlight", theme.DockHighlight()},
		{"clock", theme.ClockBg()},
		{"shell prompt", theme.ShellPrompt()},
		{"shell text", theme.ShellText()},
		{"shell error", theme.ShellError()},
		{"stats gauge", theme.StatsGaugeFilled()},
		{"notification error", theme.NotificationError()},
		{"notification warning", theme.NotificationWarning()},
		{"notification success", theme.NotificationSuccess()},
		{"notification info", theme.NotificationInfo()},
	}

	title := name
	if t := theme.Current(); t != nil && t.DisplayName != "" {
		title = t.DisplayName
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.CLITableHeader()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey())
	dimStyle := lipgloss.NewStyle().Foreground(theme.CLITableDim())

	fmt.Println(headerStyle.Render(title))
	for _, row := range rows {
		swatch := lipgloss.NewStyle().Background(row.c).Render("      ")
		fmt.Printf("%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-20s", row.label)),
			swatch,
			dimStyle.Render(theme.ColorToString(row.c)))
	}
	return nil
}
