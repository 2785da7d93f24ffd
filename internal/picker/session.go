// Package picker implements the picker session controller: a state machine
// owning query text, result list, selection cursor, scroll window, and the
// current browse directory, together with the dispatcher that maps key
// events onto its transitions.
package picker

import (
	"path/filepath"

	"pickd/internal/engine"
)

// Mode is the session's input mode.
type Mode int

const (
	// Navigation is the default mode: keys move the selection or trigger
	// activation, back navigation, and cancel.
	Navigation Mode = iota
	// TextEntry is the query editing mode: printable keys append to the
	// query, backspace removes from it.
	TextEntry
)

// Outcome is the session's lifecycle state.
type Outcome int

const (
	// Browsing means the session is live.
	Browsing Outcome = iota
	// Cancelled means the session ended with no action.
	Cancelled
	// Activated means a file entry was chosen; ActivatedPath holds it.
	Activated
)

// Refresh identifies one ranking request: the directory and query it was
// issued for. Results are committed back together with their token so late
// responses for superseded queries are rejected (last-writer-wins).
type Refresh struct {
	Dir   string
	Query string
}

// Session is the mutable state of one picker lifetime. It is not safe for
// concurrent use: transitions are applied one at a time by a single driver.
type Session struct {
	workingDir string
	query      string
	results    []engine.Entry
	selected   int // 1-based index into results
	scroll     int // 1-based first visible index
	height     int // viewport rows
	mode       Mode
	outcome    Outcome
	activated  string
}

// NewSession creates a live session rooted at dir with the given viewport
// height in result rows.
func NewSession(dir string, height int) *Session {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	if height < 1 {
		height = 1
	}
	return &Session{
		workingDir: abs,
		selected:   1,
		scroll:     1,
		height:     height,
	}
}

func (s *Session) WorkingDir() string      { return s.workingDir }
func (s *Session) Query() string           { return s.query }
func (s *Session) Results() []engine.Entry { return s.results }
func (s *Session) Selected() int           { return s.selected }
func (s *Session) Scroll() int             { return s.scroll }
func (s *Session) ViewportHeight() int     { return s.height }
func (s *Session) Mode() Mode              { return s.mode }
func (s *Session) Outcome() Outcome        { return s.outcome }

// ActivatedPath returns the chosen file path once the outcome is Activated.
func (s *Session) ActivatedPath() string { return s.activated }

// Terminated reports whether the session reached a terminal outcome.
func (s *Session) Terminated() bool { return s.outcome != Browsing }

// RefreshToken is the token a refresh of the current state must carry.
func (s *Session) RefreshToken() Refresh {
	return Refresh{Dir: s.workingDir, Query: s.query}
}

// invalidate drops the now-stale result list, resets the cursor, and returns
// the token the replacement results must carry. Stale results are never left
// displayed against a query they were not ranked for.
func (s *Session) invalidate() Refresh {
	s.results = nil
	s.selected = 1
	s.scroll = 1
	return s.RefreshToken()
}

// SeedQuery installs an initial query before the first refresh, returning
// the token for it.
func (s *Session) SeedQuery(query string) Refresh {
	s.query = query
	return s.invalidate()
}

// TypeRune appends one character to the query. TextEntry only.
func (s *Session) TypeRune(r rune) (Refresh, bool) {
	if s.Terminated() || s.mode != TextEntry {
		return Refresh{}, false
	}
	s.query += string(r)
	return s.invalidate(), true
}

// DeleteRune removes the last character of the query. TextEntry only; no-op
// on an empty query.
func (s *Session) DeleteRune() (Refresh, bool) {
	if s.Terminated() || s.mode != TextEntry || s.query == "" {
		return Refresh{}, false
	}
	rs := []rune(s.query)
	s.query = string(rs[:len(rs)-1])
	return s.invalidate(), true
}

// ClearQuery empties the query. No-op when already empty.
func (s *Session) ClearQuery() (Refresh, bool) {
	if s.Terminated() || s.query == "" {
		return Refresh{}, false
	}
	s.query = ""
	return s.invalidate(), true
}

// MoveSelection moves the cursor by delta, clamped to the result list.
// Navigation only; no-op on an empty list.
func (s *Session) MoveSelection(delta int) {
	if s.Terminated() || s.mode != Navigation || len(s.results) == 0 {
		return
	}
	s.selected = clamp(s.selected+delta, 1, len(s.results))
	s.clampScroll()
}

// SelectFirst jumps to the top of the list.
func (s *Session) SelectFirst() { s.MoveSelection(-len(s.results)) }

// SelectLast jumps to the bottom of the list.
func (s *Session) SelectLast() { s.MoveSelection(len(s.results)) }

// HalfPageDown moves the cursor down by half the viewport height.
func (s *Session) HalfPageDown() { s.MoveSelection(s.height / 2) }

// HalfPageUp moves the cursor up by half the viewport height.
func (s *Session) HalfPageUp() { s.MoveSelection(-(s.height / 2)) }

// Activate acts on the selected entry: directories are entered, files end
// the session with outcome Activated. No-op on an empty list.
func (s *Session) Activate() (Refresh, bool) {
	if s.Terminated() || len(s.results) == 0 {
		return Refresh{}, false
	}
	e := s.results[s.selected-1]
	if e.IsDir {
		return s.enter(e.Path)
	}
	s.outcome = Activated
	s.activated = e.Path
	return Refresh{}, false
}

// GoBack navigates to the parent directory. No-op at the filesystem root.
func (s *Session) GoBack() (Refresh, bool) {
	if s.Terminated() {
		return Refresh{}, false
	}
	return s.goBack()
}

// SwitchMode sets the input mode. It has no other side effect; in
// particular, entering TextEntry does not clear the query.
func (s *Session) SwitchMode(m Mode) {
	if !s.Terminated() {
		s.mode = m
	}
}

// Cancel ends the session immediately, regardless of mode.
func (s *Session) Cancel() {
	if !s.Terminated() {
		s.outcome = Cancelled
	}
}

// SetViewportHeight resizes the viewport and re-derives the scroll window.
func (s *Session) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	s.height = h
	s.clampScroll()
}

// ApplyResults commits a ranking response. The batch is dropped unless its
// token still matches the live directory and query and the session is still
// active: results for superseded queries or terminated sessions never land.
func (s *Session) ApplyResults(token Refresh, entries []engine.Entry) bool {
	if s.Terminated() || token.Dir != s.workingDir || token.Query != s.query {
		return false
	}
	s.results = entries
	s.selected = 1
	s.scroll = 1
	return true
}

// clampScroll keeps the cursor inside the visible window with minimal
// movement: scroll only when the cursor left the window, by exactly enough
// to bring it back.
func (s *Session) clampScroll() {
	if s.selected < s.scroll {
		s.scroll = s.selected
	} else if s.selected >= s.scroll+s.height {
		s.scroll = s.selected - s.height + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
