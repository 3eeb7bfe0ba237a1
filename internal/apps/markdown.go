package apps

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a markdown body to styled terminal text
// wrapped at the given width. Callers cache the result; bodies are
// static so one render per width is enough.
func RenderMarkdown(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
