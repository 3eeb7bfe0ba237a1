// Package apps defines the static application catalog for the desktop.
package apps

import "slices"

// Kind selects how an application's window body is produced.
type Kind int

const (
	// KindMarkdown renders a static markdown body.
	KindMarkdown Kind = iota
	// KindTerminal hosts the command shell.
	KindTerminal
	// KindStats shows the live system monitor.
	KindStats
)

// App describes one launchable desktop application. The set is fixed
// at compile time; the registry is populated from it once at startup.
type App struct {
	ID         string
	Title      string
	Glyph      string // Dock icon
	ASCIIGlyph string // Dock icon when unicode is unavailable
	Width      int    // Default window size
	Height     int
	Kind       Kind
	Body       string // Markdown source for KindMarkdown apps
}

var catalog = []App{
	{
		ID:         "about",
		Title:      "About",
		Glyph:      "✦",
		ASCIIGlyph: "*",
		Width:      48,
		Height:     16,
		Kind:       KindMarkdown,
		Body:       aboutBody,
	},
	{
		ID:         "projects",
		Title:      "Projects",
		Glyph:      "❖",
		ASCIIGlyph: "#",
		Width:      56,
		Height:     18,
		Kind:       KindMarkdown,
		Body:       projectsBody,
	},
	{
		ID:         "contact",
		Title:      "Contact",
		Glyph:      "✉",
		ASCIIGlyph: "@",
		Width:      44,
		Height:     12,
		Kind:       KindMarkdown,
		Body:       contactBody,
	},
	{
		ID:         "stats",
		Title:      "Stats",
		Glyph:      "☷",
		ASCIIGlyph: "%",
		Width:      48,
		Height:     14,
		Kind:       KindStats,
	},
	{
		ID:         "terminal",
		Title:      "Terminal",
		Glyph:      "▣",
		ASCIIGlyph: ">",
		Width:      60,
		Height:     18,
		Kind:       KindTerminal,
	},
}

// Catalog returns the fixed application set in dock order.
func Catalog() []App {
	return slices.Clone(catalog)
}

// ByID returns the catalog entry with the given ID.
func ByID(id string) (App, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return App{}, false
}

const aboutBody = `# about

Hi, I'm **guest**. This is folio, a small desktop that lives in
your terminal.

Windows drag with the mouse, stack when clicked, and the
terminal window understands a handful of commands. The dock at
the bottom launches everything.

Type ` + "`open about`" + ` in the terminal to bring this window
back once you close it.
`

const projectsBody = `# projects

## folio
The desktop you are looking at. Windows, a dock, a clock, and a
tiny shell, all drawn through one compositor.

## driftwood
A raft of little terminal toys. Most float, some sink.

## ledgerline
Plain-text double-entry accounting with a strict parser and
friendlier error messages than it deserves.
`

const contactBody = `# contact

- mail: guest@folio.sh
- git: github.com/foliodesk
- irc: #folio on libera
`
