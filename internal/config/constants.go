// Package config provides configuration constants and runtime settings for Folio.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Geometry
// =============================================================================

const (
	// DefaultWindowWidth is the fallback width for catalog entries that
	// don't specify one.
	DefaultWindowWidth = 48
	// DefaultWindowHeight is the fallback height for catalog entries that
	// don't specify one.
	DefaultWindowHeight = 16

	// MinWindowWidth is the minimum width a window can be rendered at.
	MinWindowWidth = 20
	// MinWindowHeight is the minimum height a window can be rendered at.
	MinWindowHeight = 6

	// CascadeStep offsets each app's default center by its dock position so
	// freshly opened windows don't land exactly on top of each other.
	CascadeStep = 2
)

// =============================================================================
// Layout
// =============================================================================

const (
	// DockHeight is the height of the dock area at the bottom.
	DockHeight = 2

	// ReservedBottomRows is the strip above the bottom edge that window
	// bottoms may not enter while dragging, so every window stays reachable
	// above the dock.
	ReservedBottomRows = DockHeight + 1

	// DockItemGap is the number of blank cells between dock items.
	DockItemGap = 2

	// ClockWidth is the width of the clock overlay (HH:MM plus padding).
	ClockWidth = 7
)

// =============================================================================
// Timing
// =============================================================================

const (
	// NormalFPS is the normal refresh rate during regular operation.
	NormalFPS = 60

	// InteractionFPS is the refresh rate during user interactions (dragging).
	InteractionFPS = 30

	// IdleFPS is the refresh rate when the desktop has been idle for a while.
	IdleFPS = 10

	// IdleThresholdFrames is the number of consecutive idle frames at
	// NormalFPS before switching to IdleFPS (~500ms at 60 FPS).
	IdleThresholdFrames = 30

	// TransitionDuration is how long an open or close transition runs.
	TransitionDuration = 240 * time.Millisecond

	// TransitionSettleDelay is how long the transition lock stays held after
	// an open transition completes, matching the visual duration.
	TransitionSettleDelay = 240 * time.Millisecond

	// TransitionWatchdogFactor scales TransitionDuration into the deadline
	// after which a stalled transition is force-completed so the lock can
	// never leak.
	TransitionWatchdogFactor = 4

	// NotificationDuration is how long notification toasts stay visible.
	NotificationDuration = 3 * time.Second

	// IdleDimAfter is how long without input before the dock hint and clock
	// render dimmed.
	IdleDimAfter = 2 * time.Minute

	// StatsRefreshInterval is how often the stats window re-samples the host.
	StatsRefreshInterval = 2 * time.Second
)

// =============================================================================
// Z-Order Layers
// =============================================================================

// Window z-indexes come from the registry's monotonic counter and stay well
// below these overlay layers.
const (
	// ZIndexDesktop is the background layer.
	ZIndexDesktop = 0

	// ZIndexAnimating is assigned to a window while its transition runs so it
	// renders above settled windows.
	ZIndexAnimating = 9000

	// ZIndexDock is the dock layer.
	ZIndexDock = 9500

	// ZIndexClock is the clock overlay layer.
	ZIndexClock = 9600

	// ZIndexNotification is the notification overlay layer.
	ZIndexNotification = 9800
)

// =============================================================================
// Logging & Shell
// =============================================================================

const (
	// MaxLogMessages is the size of the in-memory log ring.
	MaxLogMessages = 100

	// MaxShellLines caps the shell output log; older lines are trimmed.
	MaxShellLines = 400
)

// =============================================================================
// Runtime Settings
// =============================================================================

// UseASCIIOnly uses ASCII characters instead of Unicode glyphs.
// Set via --ascii-only command-line flag.
var UseASCIIOnly = false

// AnimationsEnabled controls whether open/close transitions animate.
// Set via --no-animations flag or appearance.animations_enabled config.
var AnimationsEnabled = true

// BorderStyle controls which border style to use for windows.
// Set via --border-style flag or appearance.border_style config.
var BorderStyle = "rounded"

// HideClock controls whether the clock overlay is hidden.
// Set via --hide-clock flag or appearance.hide_clock config.
var HideClock = false

// HideDock controls whether the dock is hidden. The reserved bottom strip
// remains either way.
// Set via --hide-dock flag or appearance.hide_dock config.
var HideDock = false

// Username is the identity reported by the shell's whoami and prompt.
// Set via --username flag or shell.username config.
var Username = "guest"

// Hostname is the host part of the shell prompt.
var Hostname = "folio"

// GetTransitionDuration returns the duration for open/close transitions.
// Returns 0 when animations are disabled, causing instant transitions.
func GetTransitionDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return TransitionDuration
}

// GetSettleDelay returns the post-open settle delay.
// Returns 0 when animations are disabled.
func GetSettleDelay() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return TransitionSettleDelay
}

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonClose is the close button rendered in the title bar.
	WindowButtonClose = " ⤫ "
	// WindowButtonCloseASCII is the ASCII fallback for the close button.
	WindowButtonCloseASCII = " x "

	// CloseButtonSpan is the number of title-bar cells the close button
	// occupies; mouse hit-testing uses the same span.
	CloseButtonSpan = 3

	// DockIndicatorOpen marks an open app in the dock.
	DockIndicatorOpen = "●"
	// DockIndicatorOpenASCII is the ASCII fallback for the open marker.
	DockIndicatorOpenASCII = "*"

	// GaugeFilled fills the used portion of a stats gauge.
	GaugeFilled = "█"
	// GaugeFilledASCII is the ASCII fallback for the filled portion.
	GaugeFilledASCII = "#"
	// GaugeEmpty fills the free portion of a stats gauge.
	GaugeEmpty = "░"
	// GaugeEmptyASCII is the ASCII fallback for the free portion.
	GaugeEmptyASCII = "-"

	// DesktopDot is the backdrop pattern cell.
	DesktopDot = "·"
	// DesktopDotASCII is the ASCII fallback for the backdrop pattern.
	DesktopDotASCII = "."

	// NotificationIconError marks error toasts.
	NotificationIconError = "✗"
	// NotificationIconWarning marks warning toasts.
	NotificationIconWarning = "⚠"
	// NotificationIconSuccess marks success toasts.
	NotificationIconSuccess = "✓"
	// NotificationIconInfo marks info toasts.
	NotificationIconInfo = "ℹ"
)

// GetWindowButtonClose returns the close button respecting ASCII mode.
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetDockIndicatorOpen returns the dock open-marker respecting ASCII mode.
func GetDockIndicatorOpen() string {
	if UseASCIIOnly {
		return DockIndicatorOpenASCII
	}
	return DockIndicatorOpen
}

// GetGaugeRunes returns the filled and empty gauge cells respecting
// ASCII mode.
func GetGaugeRunes() (filled, empty string) {
	if UseASCIIOnly {
		return GaugeFilledASCII, GaugeEmptyASCII
	}
	return GaugeFilled, GaugeEmpty
}

// GetDesktopDot returns the backdrop pattern cell respecting ASCII mode.
func GetDesktopDot() string {
	if UseASCIIOnly {
		return DesktopDotASCII
	}
	return DesktopDot
}

// GetNotificationIcon returns the toast icon for a notification type.
// ASCII mode falls back to plain letters.
func GetNotificationIcon(notifType string) string {
	if UseASCIIOnly {
		switch notifType {
		case "error":
			return "x"
		case "warning":
			return "!"
		case "success":
			return "+"
		default:
			return "i"
		}
	}
	switch notifType {
	case "error":
		return NotificationIconError
	case "warning":
		return NotificationIconWarning
	case "success":
		return NotificationIconSuccess
	default:
		return NotificationIconInfo
	}
}

// GetBorderForStyle returns the lipgloss Border for the current style.
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}
