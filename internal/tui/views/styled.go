package views

import (
	"strings"

	"pickd/internal/surface"
	"pickd/internal/tui/styles"
)

// RenderStyled assembles renderer output into a styled block for a terminal
// host, mapping highlight styles onto the lipgloss theme. Selection takes
// precedence over the directory style when both land on one line.
func RenderStyled(lines []string, highlights []surface.Highlight) string {
	byLine := make(map[int]surface.Style, len(highlights))
	for _, h := range highlights {
		if byLine[h.Line] == surface.StyleSelected {
			continue
		}
		byLine[h.Line] = h.Style
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch byLine[i] {
		case surface.StyleSelected:
			sb.WriteString(styles.Theme.Selected.Render(line))
		case surface.StyleDirectory:
			sb.WriteString(styles.Theme.Directory.Render(line))
		case surface.StyleHeader:
			sb.WriteString(styles.Theme.Header.Render(line))
		case surface.StylePrompt:
			sb.WriteString(styles.Theme.Prompt.Render(line))
		default:
			sb.WriteString(styles.Theme.File.Render(line))
		}
	}
	return sb.String()
}
