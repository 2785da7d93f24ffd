// Package surface declares the host editor capability interface the picker
// controller drives. The host owns the overlay region; the controller only
// holds a handle to it. Implementations live with their hosts — the in-repo
// terminal host renders these calls through bubbletea.
package surface

// Style names a highlight class. Hosts map styles onto their own display
// attributes.
type Style string

const (
	// StyleSelected marks the result row under the selection cursor.
	StyleSelected Style = "selected"
	// StyleDirectory marks result rows that are directories.
	StyleDirectory Style = "directory"
	// StyleHeader marks the working-directory header line.
	StyleHeader Style = "header"
	// StylePrompt marks the query prompt line.
	StylePrompt Style = "prompt"
)

// Highlight is one styled span, addressed by display line.
type Highlight struct {
	Line  int
	Style Style
}

// Surface is one overlay region owned by the host editor.
type Surface interface {
	// SetLines replaces the overlay's visible lines wholesale.
	SetLines(lines []string)
	// ApplyHighlight styles one line of the current content.
	ApplyHighlight(line int, style Style)
	// Close tears the overlay down. The handle is dead afterwards.
	Close()
}

// Host is the editor capability interface the picker consumes.
type Host interface {
	CreateOverlay(width, height int) (Surface, error)
	// OpenFile is invoked when a file entry is activated.
	OpenFile(path string) error
}
