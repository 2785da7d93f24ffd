package components

import (
	"pickd/internal/picker"
	"pickd/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	navigationHelp = "j/k move · enter open · h up · i filter · q quit"
	textEntryHelp  = "type to filter · esc browse · enter open"
)

type StatusBar struct {
	mode    picker.Mode
	style   lipgloss.Style
	spinner spinner.Model
	loading bool
}

func NewStatusBar() *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Theme.Help

	return &StatusBar{
		style:   styles.Theme.Help,
		spinner: s,
	}
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) SetMode(mode picker.Mode) {
	s.mode = mode
}

// Tick starts the spinner animation. Issue it whenever loading turns on.
func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) View() string {
	help := navigationHelp
	label := "NAV"
	if s.mode == picker.TextEntry {
		help = textEntryHelp
		label = "FILTER"
	}

	text := label + " · " + help
	if s.loading {
		return s.style.Render(s.spinner.View() + " " + text)
	}
	return s.style.Render(text)
}
