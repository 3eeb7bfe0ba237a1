package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/stats"
)

// TickerMsg represents a periodic tick event for updating the UI.
type TickerMsg time.Time

// ConfigReloadedMsg reports that the user config file changed on disk and
// its settings have been re-applied.
type ConfigReloadedMsg struct{}

// statsMsg delivers a fresh host sample for the stats window.
type statsMsg stats.Snapshot

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without
// creating a circular dependency.
type InputHandler func(msg tea.Msg, m *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick loop and takes a first host sample so the stats
// window has data the moment it opens.
// Note: mouse tracking, bracketed paste, and focus reporting are
// configured in the View() method as per bubbletea v2.0.0-beta.5 API
// changes.
func (m *Desktop) Init() tea.Cmd {
	m.statsInFlight = true
	return tea.Batch(
		TickCmd(),
		collectStatsCmd(),
	)
}

// TickCmd creates a command that generates tick messages at 60 FPS.
// This drives transitions and the clock.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd creates a command that generates tick messages at 30 FPS.
// Used while a drag is active, when motion events drive the updates.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd creates a command that generates tick messages at 10 FPS.
// Used when the desktop has been idle for a sustained period to reduce
// CPU.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// collectStatsCmd samples the host off the update loop.
func collectStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return statsMsg(stats.Collect())
	}
}

// Update handles all incoming messages and updates the desktop state.
func (m *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any non-tick message invalidates the render cache
	if _, isTick := msg.(TickerMsg); !isTick {
		m.renderSkipped = false
	}

	switch msg := msg.(type) {
	case TickerMsg:
		now := time.Time(msg)
		changed := false
		var cmds []tea.Cmd

		if m.Transition != nil {
			m.Transition.Advance(now)
			changed = true
		}

		if !config.HideClock {
			if minute := now.Minute(); minute != m.clockMinute {
				m.clockMinute = minute
				changed = true
			}
		}

		if dimmed := now.Sub(m.LastInputAt) >= config.IdleDimAfter; dimmed != m.Dimmed {
			m.Dimmed = dimmed
			changed = true
		}

		if len(m.Notifications) > 0 {
			m.CleanupNotifications()
			changed = true
		}

		// Re-sample the host on a slow cadence while a stats window is
		// on screen.
		if m.statsWindowVisible() && !m.statsInFlight &&
			now.Sub(m.Stats.Taken) >= config.StatsRefreshInterval {
			m.statsInFlight = true
			cmds = append(cmds, collectStatsCmd())
		}

		if changed {
			m.idleFrames = 0
		} else {
			m.idleFrames++
		}

		// Adaptive tick rate: full speed while something animates, slow
		// during drags (motion events carry the changes), idle speed
		// after a sustained quiet period.
		var nextTick tea.Cmd
		switch {
		case m.Transition != nil:
			nextTick = TickCmd()
		case m.Drag != nil:
			nextTick = SlowTickCmd()
		case m.idleFrames >= config.IdleThresholdFrames:
			nextTick = IdleTickCmd()
		default:
			nextTick = TickCmd()
		}
		cmds = append(cmds, nextTick)

		// Frame skip: keep serving the cached view when nothing visible
		// changed this tick.
		m.renderSkipped = !changed

		return m, tea.Batch(cmds...)

	case transitionStartMsg:
		return m, m.startTransition(msg)

	case transitionDoneMsg:
		return m, m.finishTransition(msg)

	case settleMsg:
		m.settleTransition(msg)
		return m, nil

	case watchdogMsg:
		m.watchdogTransition(msg)
		return m, nil

	case statsMsg:
		m.Stats = stats.Snapshot(msg)
		m.HasStats = true
		m.statsInFlight = false
		return m, nil

	case ConfigReloadedMsg:
		m.backdrop = ""
		m.ShowNotification("configuration reloaded", "info", config.NotificationDuration)
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.applyLayout()
		m.cachedViewContent = ""
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.PasteMsg:
		m.LastInputAt = time.Now()
		m.idleFrames = 0
		m.Dimmed = false
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil

	case tea.MouseMsg:
		// Other mouse events are ignored.
		return m, nil

	case tea.FocusMsg, tea.BlurMsg:
		return m, nil
	}

	return m, nil
}
