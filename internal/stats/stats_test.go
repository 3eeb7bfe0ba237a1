package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/foliodesk/folio/internal/config"
)

func TestGaugeFillCounts(t *testing.T) {
	prev := config.UseASCIIOnly
	config.UseASCIIOnly = true
	defer func() { config.UseASCIIOnly = prev }()

	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"over full clamps", 250, 10, 10},
		{"negative clamps", -5, 10, 0},
		{"rounds to nearest", 24, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := gauge(tt.percent, tt.width)
			filled := strings.Count(out, config.GaugeFilledASCII)
			empty := strings.Count(out, config.GaugeEmptyASCII)
			if filled != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", filled, tt.wantFilled)
			}
			if filled+empty != tt.width {
				t.Errorf("total cells = %d, want %d", filled+empty, tt.width)
			}
		})
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{1 << 30, "1.0 GiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := humanBytes(tt.in); got != tt.want {
			t.Errorf("humanBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{90 * time.Second, "2m"},
		{45 * time.Minute, "45m"},
		{3*time.Hour + 12*time.Minute, "3h 12m"},
		{26*time.Hour + 5*time.Minute, "1d 2h 5m"},
		{0, "0m"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.in); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderSnapshot(t *testing.T) {
	s := Snapshot{
		Hostname:   "folio-box",
		Platform:   "linux",
		Uptime:     2 * time.Hour,
		CPUPercent: 42.5,
		CPUCount:   8,
		MemUsed:    2 << 30,
		MemTotal:   8 << 30,
		MemPercent: 25,
		Load1:      0.42,
		Load5:      0.38,
		Load15:     0.31,
	}

	out := Render(s, 44)
	for _, want := range []string{"folio-box", "cpu", "mem", "load", "8 cores", "0.42"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines < 7 {
		t.Errorf("render produced %d lines, want at least 7", lines)
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	// A snapshot whose probes all failed still renders without panics.
	out := Render(Snapshot{}, 40)
	if !strings.Contains(out, "unknown") {
		t.Error("missing hostname placeholder")
	}
	if !strings.Contains(out, "n/a") {
		t.Error("missing memory placeholder")
	}
}
