package picker

import (
	"context"
	"fmt"

	"pickd/internal/engine"
	"pickd/internal/log"
	"pickd/internal/surface"
	"pickd/internal/tui/views"
)

// Controller drives a Session through the host editor capability interface.
// The host forwards raw key events to HandleKey; the controller resolves
// them against the session's mode, applies the transition, refreshes the
// result list through its engine, and redraws the overlay. The engine call
// is synchronous from the controller's point of view, so the last-writer
// check in ApplyResults is trivially satisfied here; asynchronous hosts
// carry the same Refresh token across their event loop instead.
type Controller struct {
	host   surface.Host
	surf   surface.Surface
	engine engine.Engine
	sess   *Session
	width  int
	height int
}

// NewController opens an overlay on the host, roots a session at dir, and
// performs the initial refresh and draw.
func NewController(host surface.Host, eng engine.Engine, dir string, width, height int) (*Controller, error) {
	surf, err := host.CreateOverlay(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating overlay: %w", err)
	}

	rows := height - views.ChromeRows
	if rows < 1 {
		rows = 1
	}

	c := &Controller{
		host:   host,
		surf:   surf,
		engine: eng,
		sess:   NewSession(dir, rows),
		width:  width,
		height: height,
	}
	c.refresh(c.sess.RefreshToken())
	c.draw()
	return c, nil
}

// Session exposes the controller's session for inspection.
func (c *Controller) Session() *Session { return c.sess }

// HandleKey feeds one raw key event from the host. It returns false once
// the session has terminated and the overlay is closed; the host should
// stop forwarding keys then.
func (c *Controller) HandleKey(key string) bool {
	if c.sess.Terminated() {
		return false
	}

	action, r, ok := Resolve(c.sess.Mode(), key)
	if !ok {
		return true
	}

	token, needs := Apply(c.sess, action, r)
	if needs {
		c.refresh(token)
	}

	switch c.sess.Outcome() {
	case Activated:
		c.surf.Close()
		if err := c.host.OpenFile(c.sess.ActivatedPath()); err != nil {
			log.Errorf("opening %s: %v", c.sess.ActivatedPath(), err)
		}
		return false
	case Cancelled:
		c.surf.Close()
		return false
	}

	c.draw()
	return true
}

// Resize adapts the overlay geometry and re-derives the scroll window.
func (c *Controller) Resize(width, height int) {
	c.width = width
	c.height = height
	rows := height - views.ChromeRows
	if rows < 1 {
		rows = 1
	}
	c.sess.SetViewportHeight(rows)
	c.draw()
}

func (c *Controller) refresh(token Refresh) {
	entries := c.engine.Query(context.Background(), token.Dir, token.Query)
	c.sess.ApplyResults(token, entries)
}

func (c *Controller) draw() {
	lines, highlights := views.RenderPicker(c.sess, c.width, c.height)
	c.surf.SetLines(lines)
	for _, h := range highlights {
		c.surf.ApplyHighlight(h.Line, h.Style)
	}
}
