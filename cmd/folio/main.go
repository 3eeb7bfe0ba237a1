// Package main implements folio, a desktop shell for the terminal.
// folio renders a small desktop with draggable app windows, a dock, a
// clock, and an embedded command shell, and can serve that desktop
// locally, over SSH, or to the browser.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/foliodesk/folio/internal/theme"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	cpuProfile   string
	asciiOnly    bool
	themeName    string
	listThemes   bool
	previewTheme string
	borderStyle  string
	noAnimations bool
	hideClock    bool
	hideDock     bool
	username     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "A desktop for your terminal",
		Long: `folio - a desktop for your terminal

A small desktop shell rendered entirely in the terminal: draggable app
windows, a dock, a clock, and an embedded command shell, with animated
open and close transitions.`,
		Example: `  # Run folio
  folio

  # Run with debug logging
  folio --debug

  # Run with ASCII-only mode (no Unicode glyphs)
  folio --ascii-only

  # Run with a specific theme
  folio --theme dracula

  # List all available themes
  folio --list-themes

  # Preview a theme's colors
  folio --preview-theme dracula

  # Interactively select theme with fzf and preview
  folio --theme $(folio --list-themes | fzf --preview 'folio --preview-theme {}')

  # Serve folio over SSH
  folio ssh --port 2222

  # Serve folio to the browser
  folio web

  # Edit configuration
  folio config edit`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Dump the desktop log ring on exit")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's desktop palette")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "Disable window open/close transitions")
	rootCmd.PersistentFlags().BoolVar(&hideClock, "hide-clock", false, "Hide the clock overlay")
	rootCmd.PersistentFlags().BoolVar(&hideDock, "hide-dock", false, "Hide the dock")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Shell identity shown in the prompt (default: from config or guest)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve folio over SSH",
		Long: `Serve folio over SSH

Allows remote connections to folio via SSH. The server will generate
a host key automatically if not specified. Every connection gets its
own desktop sized to the client terminal.`,
		Example: `  # Start SSH server on default port
  folio ssh

  # Start on custom port
  folio ssh --port 2222

  # Specify custom host key
  folio ssh --key-path /path/to/host_key`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve folio to the browser",
		Long: `Serve folio to the browser

Serves the desktop as a web terminal. Every browser tab gets its own
desktop sized to the page.`,
		Example: `  folio web`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWebServer()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes [name]",
		Short: "List themes or preview one",
		Long: `List all available color themes, or preview a single theme's
desktop palette when a name is given.`,
		Example: `  # List all themes
  folio themes

  # Preview the dracula palette
  folio themes dracula`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return previewThemeColors(args[0])
			}
			if err := theme.Initialize("default"); err != nil {
				return fmt.Errorf("failed to initialize themes: %w", err)
			}
			for _, t := range tint.TintIDs() {
				fmt.Println(t)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage folio configuration",
		Long:  `Manage folio configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the folio configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the folio configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the folio configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	rootCmd.AddCommand(sshCmd, webCmd, themesCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
