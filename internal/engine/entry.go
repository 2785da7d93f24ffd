// Package engine defines the ranking engine contract: the picker obtains its
// result list from an engine invocation scoped to a working directory and a
// query string. The reference engine is an external subprocess emitting a
// JSON array of entries on stdout; a built-in lister/ranker backs the
// "pickd rank" subcommand so the picker works with no engine installed.
package engine

import (
	"encoding/json"
	"path/filepath"
)

// Entry is one candidate match produced by an engine invocation. Entries are
// replaced wholesale on every refresh and never mutated.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

// decodeEntries parses engine output. Relative paths are resolved against
// the working directory the query was issued for.
func decodeEntries(data []byte, dir string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Path != "" && !filepath.IsAbs(entries[i].Path) {
			entries[i].Path = filepath.Join(dir, entries[i].Path)
		}
	}
	return entries, nil
}
