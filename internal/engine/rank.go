package engine

import (
	"os"
	"path/filepath"
	"sort"

	"pickd/internal/log"

	"github.com/gobwas/glob"
	"github.com/sahilm/fuzzy"
)

// Lister produces the default directory listing the built-in engine ranks:
// a ".." pseudo-entry first when a parent exists, then directories, then
// files, both alphabetical. Names matching an ignore pattern are dropped.
type Lister struct {
	ignore []glob.Glob
}

// NewLister compiles the ignore patterns. Patterns that fail to compile are
// skipped with a warning rather than rejected.
func NewLister(ignore []string) *Lister {
	compiled := make([]glob.Glob, 0, len(ignore))
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			log.Warnf("invalid ignore pattern %q: %v", pattern, err)
			continue
		}
		compiled = append(compiled, g)
	}
	return &Lister{ignore: compiled}
}

// List reads dir and returns its candidate entries in default order.
func (l *Lister) List(dir string) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	dirents, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if l.ignored(de.Name()) {
			continue
		}
		entries = append(entries, Entry{
			Name:  de.Name(),
			Path:  filepath.Join(abs, de.Name()),
			IsDir: de.IsDir(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	// ".." stays pinned ahead of the sorted listing.
	if parent := filepath.Dir(abs); parent != abs {
		entries = append([]Entry{{Name: "..", Path: parent, IsDir: true}}, entries...)
	}
	return entries, nil
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Rank orders entries best-first for the query. An empty query keeps the
// default listing order; ranking internals are delegated to the fuzzy
// matcher, which drops entries that do not match at all.
func Rank(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, entrySource(entries))
	ranked := make([]Entry, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, entries[m.Index])
	}
	return ranked
}

type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }
