package types

import (
	"path/filepath"
	"strings"
)

// FileEntry represents a candidate file discovered by a scan.
// Entries are rebuilt from the filesystem on every invocation and
// carry no identity beyond their absolute path.
type FileEntry struct {
	Path string // Absolute path to the file
	Ext  string // Lowercased extension including the dot (e.g. ".md")
}

// NewFileEntry builds a FileEntry for path, deriving the extension tag.
func NewFileEntry(path string) FileEntry {
	return FileEntry{
		Path: path,
		Ext:  strings.ToLower(filepath.Ext(path)),
	}
}

// Name returns the base name of the file
func (f FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// Label returns the path with the given root prefix stripped, for
// display in an interactive picker. The path is returned unchanged
// when it does not live under root.
func (f FileEntry) Label(root string) string {
	if root == "" {
		return f.Path
	}
	prefix := strings.TrimSuffix(root, string(filepath.Separator)) + string(filepath.Separator)
	return strings.TrimPrefix(f.Path, prefix)
}
