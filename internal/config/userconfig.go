package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Shell      ShellConfig      `toml:"shell"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`       // Border style: rounded, normal, thick, double, hidden, ascii
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Enable open/close transitions (default: true). Set to false for instant windows.
	HideClock         bool   `toml:"hide_clock"`         // Hide the clock overlay (default: false)
	HideDock          bool   `toml:"hide_dock"`          // Hide the dock (default: false)
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// ShellConfig holds settings for the built-in shell window
type ShellConfig struct {
	Username string `toml:"username"` // Identity reported by whoami and the prompt (default: guest)
	Hostname string `toml:"hostname"` // Host part of the prompt (default: folio)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
		},
		Shell: ShellConfig{
			Username: "guest",
			Hostname: "folio",
		},
	}
}

// validBorderStyles are the accepted appearance.border_style values.
var validBorderStyles = map[string]bool{
	"rounded": true,
	"normal":  true,
	"thick":   true,
	"double":  true,
	"hidden":  true,
	"ascii":   true,
}

// LoadUserConfig loads the user configuration from the XDG config directory.
// A missing file is created with defaults; a malformed file is an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("folio/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissing(&cfg, DefaultConfig())

	if !validBorderStyles[cfg.Appearance.BorderStyle] {
		fmt.Fprintf(os.Stderr, "Config warning in [appearance]: border_style - unknown style %q, using rounded\n", cfg.Appearance.BorderStyle)
		cfg.Appearance.BorderStyle = "rounded"
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile("folio/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return writeDefaultConfig(configPath)
}

// ResetConfig overwrites the config file with the commented default
// template and returns its path.
func ResetConfig() (string, error) {
	configPath, err := xdg.ConfigFile("folio/config.toml")
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := writeDefaultConfig(configPath); err != nil {
		return "", err
	}
	return configPath, nil
}

// writeDefaultConfig writes the default config with its documentation
// header to configPath.
func writeDefaultConfig(configPath string) (*UserConfig, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# folio configuration\n")
	sb.WriteString("# Lives at: " + configPath + "\n")
	sb.WriteString("# Command-line flags override anything set here.\n")
	sb.WriteString("#\n")
	sb.WriteString("# [appearance]\n")
	sb.WriteString("#   border_style        rounded | normal | thick | double | hidden | ascii\n")
	sb.WriteString("#   animations_enabled  false makes windows open and close instantly\n")
	sb.WriteString("#   hide_clock          drop the clock overlay\n")
	sb.WriteString("#   hide_dock           drop the dock (the bottom strip stays reserved)\n")
	sb.WriteString("#   theme               a bubbletint theme id, `folio themes` lists them;\n")
	sb.WriteString("#                       empty keeps plain terminal colors. Drop custom\n")
	sb.WriteString("#                       themes into ~/.config/folio/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# [shell]\n")
	sb.WriteString("#   username  identity shown by the prompt and whoami (default guest)\n")
	sb.WriteString("#   hostname  host part of the prompt (default folio)\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissing fills in any missing settings with defaults
func fillMissing(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Shell.Username == "" {
		cfg.Shell.Username = defaultCfg.Shell.Username
	}
	if cfg.Shell.Hostname == "" {
		cfg.Shell.Hostname = defaultCfg.Shell.Hostname
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("folio/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("folio/config.toml")
	}
	return path, nil
}
