package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/window"
)

// transitionStartMsg starts the visual transition for a window one frame
// after its lifecycle state changed, so the state change renders once
// before the transition begins.
type transitionStartMsg struct {
	appID string
	seq   int
}

// transitionDoneMsg is the transition-completion signal: it arrives when
// the visual transition has run its full duration.
type transitionDoneMsg struct {
	seq int
}

// settleMsg releases the transition lock after the post-open settle
// delay.
type settleMsg struct {
	seq int
}

// watchdogMsg force-completes a transition whose completion signal was
// never consumed, so a stalled transition cannot hold the lock forever.
type watchdogMsg struct {
	seq int
}

// frameYieldCmd schedules the transition start one frame out.
func frameYieldCmd(appID string, seq int) tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(time.Time) tea.Msg {
		return transitionStartMsg{appID: appID, seq: seq}
	})
}

// transitionDoneCmd emits the completion signal after the transition's
// full duration.
func transitionDoneCmd(seq int, duration time.Duration) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}

// settleCmd emits the settle signal that releases the lock after an open
// transition completes.
func settleCmd(seq int) tea.Cmd {
	return tea.Tick(config.GetSettleDelay(), func(time.Time) tea.Msg {
		return settleMsg{seq: seq}
	})
}

// watchdogCmd schedules the transition watchdog several durations out.
func watchdogCmd(seq int, duration time.Duration) tea.Cmd {
	return tea.Tick(duration*config.TransitionWatchdogFactor, func(time.Time) tea.Msg {
		return watchdogMsg{seq: seq}
	})
}

// startTransition creates the transition record for a window that was
// moved into Opening or Closing one frame ago, and schedules its
// completion signal and watchdog.
func (m *Desktop) startTransition(msg transitionStartMsg) tea.Cmd {
	if msg.seq != m.TransitionSeq || m.Transition != nil {
		return nil
	}
	w, ok := m.Registry.Get(msg.appID)
	if !ok {
		return nil
	}

	var kind window.TransitionKind
	switch w.State {
	case window.StateOpening:
		kind = window.TransitionOpen
	case window.StateClosing:
		kind = window.TransitionClose
	default:
		return nil
	}

	duration := config.GetTransitionDuration()
	m.Transition = window.NewTransition(msg.appID, kind, msg.seq, time.Now(), duration)

	cmds := []tea.Cmd{transitionDoneCmd(msg.seq, duration)}
	if duration > 0 {
		cmds = append(cmds, watchdogCmd(msg.seq, duration))
	}
	return tea.Batch(cmds...)
}

// finishTransition consumes the completion signal: an open moves the
// window to Open and waits out the settle delay before unlocking, a close
// moves it to Closed and unlocks immediately.
func (m *Desktop) finishTransition(msg transitionDoneMsg) tea.Cmd {
	if msg.seq != m.TransitionSeq || m.Transition == nil {
		return nil
	}

	if m.Transition.Kind == window.TransitionClose {
		m.Registry.FinishClose(m.Transition.AppID)
		m.Transition = nil
		return nil
	}

	m.Registry.FinishOpen(m.Transition.AppID)
	return settleCmd(msg.seq)
}

// settleTransition releases the lock held through the post-open settle
// delay.
func (m *Desktop) settleTransition(msg settleMsg) {
	if msg.seq != m.TransitionSeq || m.Transition == nil {
		return
	}
	m.Transition = nil
	m.Registry.Unlock()
}

// watchdogTransition force-completes a transition still in flight when
// the watchdog fires.
func (m *Desktop) watchdogTransition(msg watchdogMsg) {
	if msg.seq != m.TransitionSeq || m.Transition == nil {
		return
	}
	t := m.Transition
	m.Transition = nil

	if t.Kind == window.TransitionOpen {
		m.Registry.FinishOpen(t.AppID)
	} else {
		m.Registry.FinishClose(t.AppID)
	}
	m.Registry.Unlock()
	m.LogWarn("transition for %s force-completed by watchdog", t.AppID)
}
