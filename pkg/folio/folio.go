// Package folio provides a reusable desktop shell for the terminal that
// can be embedded in other Bubble Tea applications or used as a
// standalone TUI.
//
// folio renders a small desktop: draggable app windows, a dock, a
// clock, and an embedded command shell, animated with open and close
// transitions.
//
// # Basic Usage
//
// Create a new folio instance with default options:
//
//	model := folio.New()
//	p := tea.NewProgram(model)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize folio behavior:
//
//	model := folio.New(
//		folio.WithTheme("dracula"),
//		folio.WithAnimations(false),
//		folio.WithHideClock(true),
//	)
//
// # Using with sip (Web Terminal)
//
// folio can be served through the browser using the sip library:
//
//	server := sip.NewServer(sip.DefaultConfig())
//	server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
//		return folio.NewForPTY(sess.Pty()), folio.ProgramOptions()
//	})
package folio

import (
	tea "charm.land/bubbletea/v2"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/config"
	"github.com/foliodesk/folio/internal/input"
)

// Model is the main folio model that implements tea.Model.
// It wraps the internal Desktop struct and provides a clean public API.
type Model = app.Desktop

// Options configures a folio instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// Animations enables/disables window open and close transitions.
	// When disabled, windows snap instantly into place.
	Animations bool

	// ASCIIOnly uses ASCII characters instead of Unicode glyphs.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "ascii"
	BorderStyle string

	// HideClock hides the clock in the top-right corner.
	HideClock bool

	// HideDock hides the dock at the bottom of the desktop.
	HideDock bool

	// Username is the identity shown in the shell prompt.
	Username string

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the config
	// file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring folio.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithAnimations enables or disables window transitions.
func WithAnimations(enabled bool) Option {
	return func(o *Options) {
		o.Animations = enabled
	}
}

// WithASCIIOnly enables ASCII-only mode (no Unicode glyphs).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithHideClock hides the clock.
func WithHideClock(hide bool) Option {
	return func(o *Options) {
		o.HideClock = hide
	}
}

// WithHideDock hides the dock.
func WithHideDock(hide bool) Option {
	return func(o *Options) {
		o.HideDock = hide
	}
}

// WithUsername sets the shell prompt identity.
func WithUsername(name string) Option {
	return func(o *Options) {
		o.Username = name
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Animations: true,
	}
}

// New creates a new folio model with the given options.
// This is the main entry point for using folio as a library.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return newModel(options)
}

// PTY describes a session's pseudo-terminal dimensions. sip sessions
// and most SSH libraries satisfy it directly.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a new folio model for a PTY session with the given options.
// This is useful when embedding folio in web terminals or SSH servers.
func NewForPTY(pty PTY, opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()

	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	// Set up input handler
	app.SetInputHandler(input.HandleInput)

	// Load or create user config
	var userConfig *config.UserConfig
	if options.UserConfig != nil {
		userConfig = options.UserConfig
	} else {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	// Apply options over the user config, same precedence as CLI flags
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:    options.ASCIIOnly,
		BorderStyle:  options.BorderStyle,
		HideClock:    options.HideClock,
		HideDock:     options.HideDock,
		NoAnimations: !options.Animations,
		Username:     options.Username,
		ThemeName:    options.Theme,
	}, userConfig)

	return app.NewDesktop(options.Width, options.Height)
}

// ProgramOptions returns recommended tea.ProgramOption values for running folio.
// Use these when creating a tea.Program:
//
//	model := folio.New()
//	p := tea.NewProgram(model, folio.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage
// by filtering out redundant mouse motion events.
// Only passes through mouse motion during a title-bar drag, or while
// the desktop is dimmed so that motion can wake it.
//
// Usage:
//
//	p := tea.NewProgram(model, tea.WithFilter(folio.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	// Allow all non-motion events through
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	// Type assert to our Desktop model
	d, ok := model.(*Model)
	if !ok {
		return msg
	}

	// Allow motion events during an active drag
	if d.Drag != nil {
		return msg
	}

	// Allow motion events while dimmed so movement wakes the desktop
	if d.Dimmed {
		return msg
	}

	// Filter out motion events when not interacting
	return nil
}

// Config re-exports the config package for customization.
// This allows users to access configuration types without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
