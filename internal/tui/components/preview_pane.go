package components

import (
	"path/filepath"

	"pickd/internal/preview"
	"pickd/internal/tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// previewScrollStep is how many lines J/K move the preview at a time.
const previewScrollStep = 5

// PreviewPane renders file contents next to the result list.
type PreviewPane struct {
	viewport viewport.Model
	current  *preview.Preview
	width    int
	height   int
}

func NewPreviewPane() *PreviewPane {
	vp := viewport.New(40, 20)
	vp.Style = styles.Theme.Preview

	return &PreviewPane{viewport: vp}
}

func (p *PreviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width
	p.viewport.Height = height - 1 // one row for the header
	if p.viewport.Height < 1 {
		p.viewport.Height = 1
	}
}

// SetPreview replaces the displayed file and resets the scroll position.
func (p *PreviewPane) SetPreview(pv *preview.Preview) {
	p.current = pv
	if pv == nil {
		p.viewport.SetContent("")
	} else {
		p.viewport.SetContent(pv.Content)
	}
	p.viewport.GotoTop()
}

func (p *PreviewPane) ScrollDown() {
	p.viewport.LineDown(previewScrollStep)
}

func (p *PreviewPane) ScrollUp() {
	p.viewport.LineUp(previewScrollStep)
}

func (p *PreviewPane) View() string {
	if p.width < 1 || p.height < 1 {
		return ""
	}
	if p.current == nil {
		return styles.Theme.Help.Render("no preview")
	}

	header := filepath.Base(p.current.Path)
	if label := p.current.SizeLabel(); label != "" {
		header += "  " + label
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Theme.Header.Render(header),
		p.viewport.View(),
	)
}
