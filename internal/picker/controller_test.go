package picker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pickd/internal/engine"
	"pickd/internal/surface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFunc func(dir, query string) []engine.Entry

func (f engineFunc) Query(_ context.Context, dir, query string) []engine.Entry {
	return f(dir, query)
}

type fakeSurface struct {
	lines      []string
	highlights []surface.Highlight
	closed     bool
}

func (s *fakeSurface) SetLines(lines []string) {
	s.lines = lines
	s.highlights = nil
}

func (s *fakeSurface) ApplyHighlight(line int, style surface.Style) {
	s.highlights = append(s.highlights, surface.Highlight{Line: line, Style: style})
}

func (s *fakeSurface) Close() { s.closed = true }

type fakeHost struct {
	surf    *fakeSurface
	opened  []string
	openErr error
}

func (h *fakeHost) CreateOverlay(width, height int) (surface.Surface, error) {
	h.surf = &fakeSurface{}
	return h.surf, nil
}

func (h *fakeHost) OpenFile(path string) error {
	h.opened = append(h.opened, path)
	return h.openErr
}

// listEngine serves a fixed directory tree: every directory maps to the
// entries it contains, filtered by naive substring match on the query.
func listEngine(tree map[string][]engine.Entry) engineFunc {
	return func(dir, query string) []engine.Entry {
		var out []engine.Entry
		for _, e := range tree[dir] {
			if query == "" || strings.Contains(e.Name, query) {
				out = append(out, e)
			}
		}
		return out
	}
}

func newTestTree(t *testing.T) (string, map[string][]engine.Entry) {
	t.Helper()
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(sub, 0o755))

	tree := map[string][]engine.Entry{
		dir: {
			{Name: "src", Path: sub, IsDir: true},
			{Name: "main.go", Path: filepath.Join(dir, "main.go")},
			{Name: "makefile", Path: filepath.Join(dir, "makefile")},
		},
		sub: {
			{Name: "lib.go", Path: filepath.Join(sub, "lib.go")},
		},
	}
	return dir, tree
}

func TestControllerInitialDraw(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	require.NotNil(t, host.surf)
	require.Len(t, host.surf.lines, 6) // header, prompt, separator, 3 entries
	assert.Contains(t, host.surf.lines[1], ">")
	assert.Contains(t, host.surf.lines[3], "src")
	assert.Contains(t, host.surf.highlights, surface.Highlight{Line: 3, Style: surface.StyleSelected})
	assert.Len(t, c.Session().Results(), 3)
}

func TestControllerTypingRefreshes(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	require.True(t, c.HandleKey("i"))
	require.True(t, c.HandleKey("m"))
	require.True(t, c.HandleKey("a"))

	assert.Equal(t, "ma", c.Session().Query())
	require.Len(t, c.Session().Results(), 2)
	assert.Contains(t, host.surf.lines[3], "main.go")
	assert.Contains(t, host.surf.lines[4], "makefile")
}

func TestControllerUnmappedKeyIgnored(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	before := c.Session().Selected()
	assert.True(t, c.HandleKey("x"))
	assert.Equal(t, before, c.Session().Selected())
	assert.False(t, host.surf.closed)
}

func TestControllerActivateFileOpensAndCloses(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	require.True(t, c.HandleKey("j")) // main.go
	assert.False(t, c.HandleKey("enter"))

	assert.True(t, host.surf.closed)
	assert.Equal(t, []string{filepath.Join(dir, "main.go")}, host.opened)
	assert.Equal(t, Activated, c.Session().Outcome())

	// Keys after termination are dead.
	assert.False(t, c.HandleKey("j"))
	assert.Len(t, host.opened, 1)
}

func TestControllerActivateDirectoryNavigates(t *testing.T) {
	dir, tree := newTestTree(t)
	sub := filepath.Join(dir, "src")
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	require.True(t, c.HandleKey("enter")) // src is selected first

	assert.Equal(t, sub, c.Session().WorkingDir())
	assert.Empty(t, c.Session().Query())
	require.Len(t, c.Session().Results(), 1)
	assert.Contains(t, host.surf.lines[3], "lib.go")
	assert.Empty(t, host.opened)
	assert.False(t, host.surf.closed)

	// And back up.
	require.True(t, c.HandleKey("h"))
	assert.Equal(t, dir, c.Session().WorkingDir())
	assert.Len(t, c.Session().Results(), 3)
}

func TestControllerCancelCloses(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	assert.False(t, c.HandleKey("q"))
	assert.True(t, host.surf.closed)
	assert.Empty(t, host.opened)
	assert.Equal(t, Cancelled, c.Session().Outcome())
}

func TestControllerEngineFailureDegrades(t *testing.T) {
	dir, _ := newTestTree(t)
	host := &fakeHost{}
	dead := engineFunc(func(string, string) []engine.Entry { return nil })

	c, err := NewController(host, dead, dir, 40, 10)
	require.NoError(t, err)

	assert.Empty(t, c.Session().Results())
	assert.True(t, c.HandleKey("j"))     // move on empty list: no-op
	assert.True(t, c.HandleKey("enter")) // activate on empty list: no-op
	assert.False(t, c.Session().Terminated())
}

func TestControllerResize(t *testing.T) {
	dir, tree := newTestTree(t)
	host := &fakeHost{}

	c, err := NewController(host, listEngine(tree), dir, 40, 10)
	require.NoError(t, err)

	c.Resize(40, 4)
	assert.Equal(t, 1, c.Session().ViewportHeight())
	require.Len(t, host.surf.lines, 4) // chrome + one visible row
}
