package picker

import (
	"os"
	"path/filepath"
)

// Directory navigation. Transitions validate their target before touching
// session state: an invalid or inaccessible target leaves the session
// unchanged.

// Enter re-roots the session at target if it is an accessible directory,
// clearing the query and resetting the cursor and scroll window.
func (s *Session) Enter(target string) (Refresh, bool) {
	if s.Terminated() {
		return Refresh{}, false
	}
	return s.enter(target)
}

func (s *Session) enter(target string) (Refresh, bool) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return Refresh{}, false
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return Refresh{}, false
	}
	s.workingDir = abs
	s.query = ""
	return s.invalidate(), true
}

func (s *Session) goBack() (Refresh, bool) {
	parent := filepath.Dir(s.workingDir)
	if parent == s.workingDir {
		return Refresh{}, false
	}
	return s.enter(parent)
}
