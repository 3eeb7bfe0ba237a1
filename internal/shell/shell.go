// Package shell implements the desktop's embedded command interpreter.
package shell

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/foliodesk/folio/internal/config"
)

// LineKind classifies a terminal output line for rendering.
type LineKind int

const (
	// LinePlain is ordinary command output.
	LinePlain LineKind = iota
	// LineEcho is the echoed copy of a submitted command.
	LineEcho
	// LineError is a user-input error line.
	LineError
)

// Line is one entry in the terminal output log.
type Line struct {
	Text string
	Kind LineKind
}

// Launcher is the shell's view of the window registry. Has reports
// whether an app with the given name exists; Launch begins its open
// sequence and returns the command that drives it.
type Launcher interface {
	Has(name string) bool
	Launch(name string) tea.Cmd
}

// builtin is one entry in the help listing.
type builtin struct {
	name string
	help string
}

var builtins = []builtin{
	{"help", "list available commands"},
	{"clear", "clear the terminal output"},
	{"date", "print the current date and time"},
	{"whoami", "print the current user"},
	{"open", "open an application window (open <app>)"},
}

// Shell holds the interpreter state for the terminal window. It is
// owned by the update loop and mutated only through its methods.
type Shell struct {
	Output  []Line
	History []string
	Cursor  int    // Recall position; len(History) means past the end
	Input   string // Current contents of the input line

	launcher Launcher
}

// New returns a shell wired to the given launcher, with the greeting
// already printed.
func New(launcher Launcher) *Shell {
	s := &Shell{launcher: launcher}
	s.appendLine(LinePlain, "folio shell. type 'help' to get started.")
	return s
}

// Prompt returns the prompt string shown before the input line and on
// echoed commands.
func Prompt() string {
	return fmt.Sprintf("%s@%s:~$ ", config.Username, config.Hostname)
}

// Submit interprets one input line. Blank lines vanish without an echo
// or a history entry. Everything else is echoed, recorded in history
// unless it repeats the immediately preceding entry, and dispatched.
// The returned command is non-nil only when a window launch started.
func (s *Shell) Submit(line string) tea.Cmd {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	s.appendLine(LineEcho, trimmed)

	if n := len(s.History); n == 0 || s.History[n-1] != trimmed {
		s.History = append(s.History, trimmed)
	}
	s.Cursor = len(s.History)

	// First token names the command; the rest collapses into a single
	// lowercased argument string.
	fields := strings.Fields(trimmed)
	name := strings.ToLower(fields[0])
	arg := strings.ToLower(strings.Join(fields[1:], " "))

	return s.run(name, arg)
}

func (s *Shell) run(name, arg string) tea.Cmd {
	switch name {
	case "help":
		s.printHelp()
	case "clear":
		s.Output = nil
	case "date":
		s.appendLine(LinePlain, time.Now().Format("Mon Jan 2 15:04:05 MST 2006"))
	case "whoami":
		s.appendLine(LinePlain, config.Username)
	case "open":
		return s.runOpen(arg)
	default:
		s.appendLine(LineError, fmt.Sprintf("folio: %s: command not found", name))
	}
	return nil
}

func (s *Shell) runOpen(arg string) tea.Cmd {
	if arg == "" {
		s.appendLine(LineError, "usage: open <app>")
		return nil
	}
	if s.launcher == nil || !s.launcher.Has(arg) {
		s.appendLine(LineError, fmt.Sprintf("open: %s: no such app", arg))
		return nil
	}
	s.appendLine(LinePlain, "launching "+arg+"...")
	return s.launcher.Launch(arg)
}

func (s *Shell) printHelp() {
	s.appendLine(LinePlain, "available commands:")
	for _, b := range builtins {
		s.appendLine(LinePlain, fmt.Sprintf("  %-8s %s", b.name, b.help))
	}
}

// SubmitInput submits the current input line and clears it regardless
// of what the line contained.
func (s *Shell) SubmitInput() tea.Cmd {
	cmd := s.Submit(s.Input)
	s.Input = ""
	return cmd
}

// RecallPrev steps the recall cursor back one entry, floored at the
// oldest, and replaces the input line with that entry.
func (s *Shell) RecallPrev() {
	if s.Cursor > 0 {
		s.Cursor--
		s.Input = s.History[s.Cursor]
	}
}

// RecallNext steps the recall cursor forward one entry. Past the newest
// entry the input empties and the cursor pins at history length.
func (s *Shell) RecallNext() {
	if s.Cursor+1 < len(s.History) {
		s.Cursor++
		s.Input = s.History[s.Cursor]
		return
	}
	s.Cursor = len(s.History)
	s.Input = ""
}

// InsertText appends typed or pasted text to the input line. Control
// characters and newlines are dropped so pasted blocks cannot submit
// themselves.
func (s *Shell) InsertText(text string) {
	var b strings.Builder
	for _, r := range text {
		if r == '\n' || r == '\r' || r < ' ' {
			continue
		}
		b.WriteRune(r)
	}
	s.Input += b.String()
}

// Backspace removes the last rune from the input line.
func (s *Shell) Backspace() {
	if s.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Input)
	s.Input = s.Input[:len(s.Input)-size]
}

// appendLine adds one output entry, trimming the log to its cap so a
// long session cannot grow without bound.
func (s *Shell) appendLine(kind LineKind, text string) {
	s.Output = append(s.Output, Line{Text: text, Kind: kind})
	if len(s.Output) > config.MaxShellLines {
		s.Output = s.Output[len(s.Output)-config.MaxShellLines:]
	}
}
