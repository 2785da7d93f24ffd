// Package views renders picker state into display lines. Rendering is pure:
// views read session state through a narrow interface and never mutate it.
package views

import (
	"os"
	"strings"

	"pickd/internal/engine"
	"pickd/internal/surface"
)

// SessionReader is the read-only view of picker state the renderer consumes.
type SessionReader interface {
	WorkingDir() string
	Query() string
	Results() []engine.Entry
	Selected() int
	Scroll() int
}

// ChromeRows is the number of lines above the result list: header, prompt,
// separator.
const ChromeRows = 3

const (
	glyphDir   = "📁 "
	glyphFile  = "📄 "
	cursorMark = "▌"
)

// RenderPicker produces the overlay lines and highlight spans for one
// session snapshot and overlay geometry. Identical input yields identical
// output.
func RenderPicker(s SessionReader, width, height int) ([]string, []surface.Highlight) {
	if width < 1 || height < 1 {
		return nil, nil
	}

	lines := make([]string, 0, height)
	lines = append(lines, truncateLeft(abbreviatePath(s.WorkingDir()), width))
	lines = append(lines, truncateRight("> "+s.Query()+cursorMark, width))
	lines = append(lines, strings.Repeat("─", width))

	highlights := []surface.Highlight{
		{Line: 0, Style: surface.StyleHeader},
		{Line: 1, Style: surface.StylePrompt},
	}

	results := s.Results()
	rows := height - ChromeRows
	if rows < 1 {
		rows = 1
	}
	first := s.Scroll()
	last := min(first+rows-1, len(results))
	for i := first; i <= last; i++ {
		e := results[i-1]
		glyph := glyphFile
		if e.IsDir {
			glyph = glyphDir
		}
		lines = append(lines, truncateRight(glyph+e.Name, width))
		line := len(lines) - 1
		if e.IsDir {
			highlights = append(highlights, surface.Highlight{Line: line, Style: surface.StyleDirectory})
		}
		if i == s.Selected() {
			highlights = append(highlights, surface.Highlight{Line: line, Style: surface.StyleSelected})
		}
	}

	return lines, highlights
}

// abbreviatePath shortens the home directory prefix to "~".
func abbreviatePath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+"/") {
		return "~" + p[len(home):]
	}
	return p
}

// truncateLeft keeps the tail of s, prefixing an ellipsis when elided. The
// tail is the interesting part of a directory path.
func truncateLeft(s string, width int) string {
	rs := []rune(s)
	if len(rs) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return "…" + string(rs[len(rs)-width+1:])
}

// truncateRight keeps the head of s, suffixing an ellipsis when elided.
func truncateRight(s string, width int) string {
	rs := []rune(s)
	if len(rs) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(rs[:width-1]) + "…"
}
