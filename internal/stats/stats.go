// Package stats samples host metrics for the system monitor window.
package stats

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/theme"
)

// Snapshot is one sampling of the host. Probes that fail leave their
// fields zero and the renderer shows them as unavailable.
type Snapshot struct {
	Hostname   string
	Platform   string
	Uptime     time.Duration
	CPUPercent float64
	CPUCount   int
	MemUsed    uint64
	MemTotal   uint64
	MemPercent float64
	Load1      float64
	Load5      float64
	Load15     float64
	Taken      time.Time
}

// Collect samples the host once. CPU usage is measured against the
// previous call, so the first snapshot of a session reports zero CPU.
func Collect() Snapshot {
	s := Snapshot{Taken: time.Now()}

	if info, err := host.Info(); err == nil {
		s.Hostname = info.Hostname
		s.Platform = info.Platform
		s.Uptime = time.Duration(info.Uptime) * time.Second
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	if count, err := cpu.Counts(true); err == nil {
		s.CPUCount = count
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsed = vm.Used
		s.MemTotal = vm.Total
		s.MemPercent = vm.UsedPercent
	}
	if avg, err := load.Avg(); err == nil {
		s.Load1 = avg.Load1
		s.Load5 = avg.Load5
		s.Load15 = avg.Load15
	}
	return s
}

// Render lays out a snapshot for a window body of the given inner
// width. Long lines are clipped by the window renderer, not here.
func Render(s Snapshot, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.StatsLabel())
	valueStyle := lipgloss.NewStyle().Foreground(theme.StatsValue())

	gaugeWidth := width - 11
	if gaugeWidth < 8 {
		gaugeWidth = 8
	}
	if gaugeWidth > 40 {
		gaugeWidth = 40
	}

	var b strings.Builder
	row := func(name, val string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" %-8s ", name)))
		b.WriteString(valueStyle.Render(val))
		b.WriteByte('\n')
	}
	gaugeRow := func(percent float64) {
		b.WriteString(strings.Repeat(" ", 10))
		b.WriteString(gauge(percent, gaugeWidth))
		b.WriteByte('\n')
	}

	hostLine := s.Hostname
	if hostLine == "" {
		hostLine = "unknown"
	}
	if s.Platform != "" {
		hostLine += " (" + s.Platform + ")"
	}
	row("host", hostLine)
	row("uptime", formatUptime(s.Uptime))
	b.WriteByte('\n')

	cpuLine := fmt.Sprintf("%.1f%%", s.CPUPercent)
	if s.CPUCount > 0 {
		cpuLine += fmt.Sprintf(" of %d cores", s.CPUCount)
	}
	row("cpu", cpuLine)
	gaugeRow(s.CPUPercent)

	memLine := "n/a"
	if s.MemTotal > 0 {
		memLine = fmt.Sprintf("%s / %s (%.0f%%)", humanBytes(s.MemUsed), humanBytes(s.MemTotal), s.MemPercent)
	}
	row("mem", memLine)
	gaugeRow(s.MemPercent)

	row("load", fmt.Sprintf("%.2f %.2f %.2f", s.Load1, s.Load5, s.Load15))

	return strings.TrimRight(b.String(), "\n")
}

// gauge renders a percentage bar of the given cell width.
func gauge(percent float64, width int) string {
	filled := int(percent/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	filledRune, emptyRune := config.GetGaugeRunes()
	filledStyle := lipgloss.NewStyle().Foreground(theme.StatsGaugeFilled())
	emptyStyle := lipgloss.NewStyle().Foreground(theme.StatsGaugeEmpty())

	return filledStyle.Render(strings.Repeat(filledRune, filled)) +
		emptyStyle.Render(strings.Repeat(emptyRune, width-filled))
}

// humanBytes formats a byte count with binary unit prefixes.
func humanBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// formatUptime renders an uptime as days, hours, and minutes.
func formatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
