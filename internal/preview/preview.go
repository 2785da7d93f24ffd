// Package preview loads bounded file previews for the picker's side pane.
// Loading never fails hard: unreadable or binary files degrade to a
// placeholder so the session keeps running.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Preview is the displayable content of one candidate file.
type Preview struct {
	Path      string
	Content   string
	Size      int64
	Binary    bool
	Truncated bool
}

// SizeLabel renders the file size for the status line.
func (p Preview) SizeLabel() string {
	if p.Size < 0 {
		return ""
	}
	return humanize.Bytes(uint64(p.Size))
}

var binaryExtensions = map[string]bool{
	".exe": true, ".bin": true, ".dll": true, ".so": true, ".dylib": true,
	".a": true, ".o": true, ".obj": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".ico": true, ".tiff": true, ".webp": true,
	".mp3": true, ".mp4": true, ".wav": true, ".flac": true, ".ogg": true,
	".avi": true, ".mkv": true, ".mov": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".7z": true, ".rar": true,
}

// Load reads at most maxBytes of path. Known binary extensions are not read
// at all; content containing NUL bytes is reported as binary.
func Load(path string, maxBytes int) Preview {
	p := Preview{Path: path, Size: -1}
	if maxBytes <= 0 {
		maxBytes = 50000
	}

	if info, err := os.Stat(path); err == nil {
		p.Size = info.Size()
	}

	name := filepath.Base(path)
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		p.Binary = true
		p.Content = fmt.Sprintf("Binary file: %s", name)
		return p
	}

	f, err := os.Open(path)
	if err != nil {
		p.Content = "Could not read file"
		return p
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)))
	if err != nil {
		p.Content = "Could not read file"
		return p
	}

	if bytes.ContainsRune(data, 0) {
		p.Binary = true
		p.Content = fmt.Sprintf("Binary file: %s", name)
		return p
	}

	p.Content = string(data)
	if p.Size > int64(maxBytes) {
		p.Truncated = true
		p.Content += fmt.Sprintf("...\n\n[File truncated - %d bytes total]", p.Size)
	}
	return p
}
