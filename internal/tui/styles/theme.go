package styles

import (
	"github.com/charmbracelet/lipgloss"

	"pickd/internal/config"
)

// Theme defines the core UI styles
var Theme = struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Selected  lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Help      lipgloss.Style
	Preview   lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(0, 1),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#4F4FB7")).
		Bold(true),
	Directory: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#81A1C1")).
		Bold(true),
	File: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Preview: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")),
}

// ApplyConfig overrides theme colors from the configuration. Empty values
// keep the defaults.
func ApplyConfig(cfg *config.Config) {
	if cfg.Theme.Selected != "" {
		Theme.Selected = Theme.Selected.Background(lipgloss.Color(cfg.Theme.Selected))
	}
	if cfg.Theme.Directory != "" {
		Theme.Directory = Theme.Directory.Foreground(lipgloss.Color(cfg.Theme.Directory))
	}
	if cfg.Theme.Header != "" {
		Theme.Header = Theme.Header.Foreground(lipgloss.Color(cfg.Theme.Header))
	}
	if cfg.Theme.Prompt != "" {
		Theme.Prompt = Theme.Prompt.Foreground(lipgloss.Color(cfg.Theme.Prompt))
	}
	if cfg.Theme.Help != "" {
		Theme.Help = Theme.Help.Foreground(lipgloss.Color(cfg.Theme.Help))
	}
}
