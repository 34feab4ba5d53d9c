// Package scan discovers candidate files and folders on disk. Results
// are rebuilt from the filesystem on every call; nothing is cached.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"notable/internal/log"
	"notable/pkg/types"
)

// Scanner walks directory trees collecting files by extension.
// Directories whose name matches an exclude pattern are skipped.
type Scanner struct {
	exclude []glob.Glob
}

// New creates a Scanner with the given directory-name exclude patterns.
func New(excludePatterns []string) (*Scanner, error) {
	s := &Scanner{}
	for _, pattern := range excludePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		s.exclude = append(s.exclude, g)
	}
	return s, nil
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Files walks root recursively and returns every regular file whose
// extension belongs to exts, compared case-insensitively. The returned
// paths are absolute. An empty or nonexistent root yields an empty
// slice, not an error; unreadable subtrees are skipped.
func (s *Scanner) Files(root string, exts []string) ([]types.FileEntry, error) {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var entries []types.FileEntry
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable subtrees instead of aborting the walk
			log.Debugf("skipping unreadable path %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != absRoot && s.excluded(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		entry := types.NewFileEntry(path)
		if allowed[entry.Ext] {
			entries = append(entries, entry)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

// FirstLevelDirs returns the names of the immediate, non-hidden
// subdirectories of root. A nonexistent root yields an empty slice.
func (s *Scanner) FirstLevelDirs(root string) ([]string, error) {
	if root == "" {
		root = "."
	}
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") || s.excluded(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Shallow returns the immediate regular files of dir.
func (s *Scanner) Shallow(dir string) ([]types.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []types.FileEntry
	for _, entry := range dirEntries {
		if !entry.Type().IsRegular() {
			continue
		}
		entries = append(entries, types.NewFileEntry(filepath.Join(dir, entry.Name())))
	}
	return entries, nil
}

// Deep returns all subdirectories and regular files under dir,
// recursively, with absolute paths. The root itself is not included.
func (s *Scanner) Deep(dir string) (dirs []string, files []types.FileEntry, err error) {
	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, err
	}

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debugf("skipping unreadable path %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if s.excluded(d.Name()) {
				return fs.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, types.NewFileEntry(path))
		}
		return nil
	})
	if walkErr != nil {
		return nil, nil, walkErr
	}
	return dirs, files, nil
}
