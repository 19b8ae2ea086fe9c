// Package fs provides filesystem access to export files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/clipdoc"
)

// Ensure Source implements clipdoc.Source at compile time.
var _ clipdoc.Source = (*Source)(nil)

// markupExts are the file extensions scanned when discovering a directory,
// matched case-insensitively.
var markupExts = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
}

// Source reads export files from a local file or directory.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Discover returns the export files under path in lexical order. A path
// naming a single file is returned as-is without extension filtering.
func (s *Source) Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, clipdoc.Errorf(clipdoc.ENOTFOUND, "input path %q does not exist", path)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by name.
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if markupExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}

// ReadLines reads one file as UTF-8 text split into lines. Windows line
// endings are normalized away.
func (s *Source) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, clipdoc.Errorf(clipdoc.ENOTFOUND, "file %q does not exist", path)
	}
	if err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}
