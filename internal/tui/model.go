// Package tui hosts the picker session inside a bubbletea program: it owns
// the event loop, issues ranking requests asynchronously, and paints the
// result list, preview pane, and status bar.
package tui

import (
	"context"

	"pickd/internal/config"
	"pickd/internal/engine"
	"pickd/internal/log"
	"pickd/internal/picker"
	"pickd/internal/preview"
	"pickd/internal/tui/components"
	"pickd/internal/tui/views"
	"pickd/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// previewMinWidth is the terminal width below which the preview pane is
// dropped to leave room for the list.
const previewMinWidth = 80

// resultsMsg carries one ranking response back into the event loop together
// with the token it was issued under.
type resultsMsg struct {
	token   picker.Refresh
	entries []engine.Entry
}

// watchMsg signals that the watched directory changed on disk.
type watchMsg struct{}

type Model struct {
	sess    *picker.Session
	eng     engine.Engine
	cfg     *config.Config
	status  *components.StatusBar
	preview *components.PreviewPane
	watcher *watch.Watcher

	width       int
	height      int
	pending     int
	previewPath string
	selection   string
	quitting    bool
}

// New builds the program model rooted at dir. An initial query is seeded
// before the first refresh so the first visible list already reflects it.
func New(cfg *config.Config, eng engine.Engine, dir, initialQuery string) *Model {
	sess := picker.NewSession(dir, 20)
	if initialQuery != "" {
		sess.SeedQuery(initialQuery)
		sess.SwitchMode(picker.TextEntry)
	}

	watcher, err := watch.New()
	if err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher = nil
	} else if err := watcher.SetDirectory(sess.WorkingDir()); err != nil {
		log.Warnf("directory watching disabled: %v", err)
		watcher.Stop()
		watcher = nil
	} else {
		watcher.Start()
	}

	return &Model{
		sess:    sess,
		eng:     eng,
		cfg:     cfg,
		status:  components.NewStatusBar(),
		preview: components.NewPreviewPane(),
		watcher: watcher,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startRefresh(m.sess.RefreshToken()), m.watchCmd())
}

// Selection returns the activated file path, or "" when the session was
// cancelled. Valid after the program exits.
func (m *Model) Selection() string {
	return m.selection
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case resultsMsg:
		m.pending--
		if m.pending <= 0 {
			m.pending = 0
			m.status.SetLoading(false)
		}
		m.sess.ApplyResults(msg.token, msg.entries)
		m.refreshPreview()
		return m, nil
	case watchMsg:
		// Re-rank the live query so the list tracks on-disk changes.
		return m, tea.Batch(m.startRefresh(m.sess.RefreshToken()), m.watchCmd())
	}

	return m, m.status.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, r, ok := picker.Resolve(m.sess.Mode(), msg.String())
	if !ok {
		return m, nil
	}

	switch action {
	case picker.ActionPreviewDown:
		m.preview.ScrollDown()
		return m, nil
	case picker.ActionPreviewUp:
		m.preview.ScrollUp()
		return m, nil
	}

	prevDir := m.sess.WorkingDir()
	token, needRefresh := picker.Apply(m.sess, action, r)

	if m.sess.Terminated() {
		if m.sess.Outcome() == picker.Activated {
			m.selection = m.sess.ActivatedPath()
		}
		m.quitting = true
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit
	}

	if m.watcher != nil && m.sess.WorkingDir() != prevDir {
		if err := m.watcher.SetDirectory(m.sess.WorkingDir()); err != nil {
			log.Warnf("cannot watch %s: %v", m.sess.WorkingDir(), err)
		}
	}

	m.status.SetMode(m.sess.Mode())
	m.refreshPreview()

	if needRefresh {
		return m, m.startRefresh(token)
	}
	return m, nil
}

// startRefresh records an in-flight ranking request and returns the command
// that runs it off the event loop.
func (m *Model) startRefresh(token picker.Refresh) tea.Cmd {
	m.pending++
	m.status.SetLoading(true)

	eng := m.eng
	query := func() tea.Msg {
		return resultsMsg{token: token, entries: eng.Query(context.Background(), token.Dir, token.Query)}
	}
	return tea.Batch(query, m.status.Tick())
}

func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return watchMsg{}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	rows := height - 1 - views.ChromeRows // status bar plus list chrome
	if rows < 1 {
		rows = 1
	}
	m.sess.SetViewportHeight(rows)
	if m.showPreview() {
		m.preview.SetSize(width-m.listWidth()-1, height-1)
	}
}

func (m *Model) showPreview() bool {
	return !m.cfg.Preview.Disabled && m.width >= previewMinWidth
}

func (m *Model) listWidth() int {
	if m.showPreview() {
		return (m.width - 1) / 2
	}
	return m.width
}

// refreshPreview keeps the preview pane in sync with the selected entry.
// The file is only re-read when the selection actually moved.
func (m *Model) refreshPreview() {
	if !m.showPreview() {
		return
	}

	results := m.sess.Results()
	if len(results) == 0 {
		m.clearPreview()
		return
	}
	e := results[m.sess.Selected()-1]
	if e.IsDir {
		m.clearPreview()
		return
	}
	if e.Path == m.previewPath {
		return
	}
	pv := preview.Load(e.Path, m.cfg.Preview.MaxBytes)
	m.preview.SetPreview(&pv)
	m.previewPath = e.Path
}

func (m *Model) clearPreview() {
	if m.previewPath == "" {
		return
	}
	m.preview.SetPreview(nil)
	m.previewPath = ""
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting || m.width < 1 || m.height < 1 {
		return ""
	}

	lines, highlights := views.RenderPicker(m.sess, m.listWidth(), m.height-1)
	body := views.RenderStyled(lines, highlights)
	if m.showPreview() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.preview.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.status.View())
}
