package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the custom themes directory
// (~/.config/folio/themes/), creating it if missing.
func GetThemesDir() (string, error) {
	// xdg.ConfigFile resolves the path and creates parent directories.
	keepFile, err := xdg.ConfigFile("folio/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes registers every *.json theme in dir with bubbletint
// and returns the IDs that loaded. A bad file is logged and skipped, it
// never fails startup.
func LoadCustomThemes(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan themes directory: %w", err)
	}

	var loaded []string
	for _, path := range paths {
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", filepath.Base(path), err)
			continue
		}
		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, nil
}

// LoadCustomThemeFile parses one theme JSON file. The ID falls back to
// the file name, the display name falls back to the ID, and any palette
// slot the file leaves out is filled with an xterm default so partial
// themes are always usable.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - paths come from the user's own themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults completes a partial palette: missing base slots get xterm
// defaults, the cursor inherits the foreground, and missing bright
// variants inherit their normal counterpart.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		slot **tint.Color
		hex  string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, s := range base {
		if *s.slot == nil {
			*s.slot = tint.FromHex(s.hex)
		}
	}

	if t.Cursor == nil {
		t.Cursor = cloneColor(t.Fg)
	}

	bright := []struct {
		slot   **tint.Color
		normal *tint.Color
	}{
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, b := range bright {
		if *b.slot == nil {
			*b.slot = cloneColor(b.normal)
		}
	}
}

// cloneColor copies a color so fallback slots never alias the slot they
// inherit from.
func cloneColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
