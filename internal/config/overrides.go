package config

import (
	"log"

	"github.com/foliodesk/folio/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Unicode glyphs
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// HideClock overrides hiding the clock
	HideClock bool

	// HideDock overrides hiding the dock
	HideDock bool

	// NoAnimations disables open/close transitions
	NoAnimations bool

	// Username overrides the shell identity
	Username string

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - simple flag override
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Hide Dock - OR of CLI flag and user config
	if userConfig != nil {
		HideDock = overrides.HideDock || userConfig.Appearance.HideDock
	} else {
		HideDock = overrides.HideDock
	}

	// Animations - config value first, then the flag can only disable
	if userConfig != nil && userConfig.Appearance.AnimationsEnabled != nil {
		AnimationsEnabled = *userConfig.Appearance.AnimationsEnabled
	}
	if overrides.NoAnimations {
		AnimationsEnabled = false
	}

	// Username - CLI flag takes precedence, otherwise use user config
	if overrides.Username != "" {
		Username = overrides.Username
	} else if userConfig != nil && userConfig.Shell.Username != "" {
		Username = userConfig.Shell.Username
	}
	if userConfig != nil && userConfig.Shell.Hostname != "" {
		Hostname = userConfig.Shell.Hostname
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
