package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notable/internal/scan"
)

// writeFiles creates empty files at the given relative paths under root,
// creating parent directories as needed.
func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
}

func newScanner(t *testing.T, exclude ...string) *scan.Scanner {
	t.Helper()
	s, err := scan.New(exclude)
	require.NoError(t, err)
	return s
}

func TestFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"todo.md",
		"paper.PDF",
		"book.epub",
		"image.png",
		"deep/nested/linear-algebra.md",
		"deep/nested/script.py",
	)

	s := newScanner(t)

	t.Run("filters by extension recursively", func(t *testing.T) {
		entries, err := s.Files(tmpDir, []string{".md", ".pdf", ".epub"})
		require.NoError(t, err)

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"todo.md", "paper.PDF", "book.epub", "linear-algebra.md"}, names)
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		entries, err := s.Files(tmpDir, []string{".pdf"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "paper.PDF", entries[0].Name())
		assert.Equal(t, ".pdf", entries[0].Ext)
	})

	t.Run("paths are absolute", func(t *testing.T) {
		entries, err := s.Files(tmpDir, []string{".epub"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, filepath.IsAbs(entries[0].Path))
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		entries, err := s.Files(tmpDir, []string{".docx"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("nonexistent root yields empty slice", func(t *testing.T) {
		entries, err := s.Files(filepath.Join(tmpDir, "does-not-exist"), []string{".md"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("empty root yields empty slice", func(t *testing.T) {
		entries, err := s.Files(t.TempDir(), []string{".md"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestFilesExcludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"keep.md",
		".git/objects/ignored.md",
		"node_modules/pkg/readme.md",
		"src/kept.md",
	)

	s := newScanner(t, ".*", "node_modules")

	entries, err := s.Files(tmpDir, []string{".md"})
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"keep.md", "kept.md"}, names)
}

func TestFirstLevelDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "stray.md", "alpha/a.md", "beta/b.md", ".hidden/h.md")

	s := newScanner(t)

	t.Run("lists non-hidden subdirectories", func(t *testing.T) {
		dirs, err := s.FirstLevelDirs(tmpDir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alpha", "beta"}, dirs)
	})

	t.Run("nonexistent root yields empty slice", func(t *testing.T) {
		dirs, err := s.FirstLevelDirs(filepath.Join(tmpDir, "missing"))
		require.NoError(t, err)
		assert.Empty(t, dirs)
	})
}

func TestShallow(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "top.md", "sub/nested.md")

	s := newScanner(t)

	entries, err := s.Shallow(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "top.md", entries[0].Name())
}

func TestDeep(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.md", "docs/b.md", "docs/drafts/c.md")

	s := newScanner(t)

	dirs, files, err := s.Deep(tmpDir)
	require.NoError(t, err)

	var dirNames []string
	for _, d := range dirs {
		dirNames = append(dirNames, filepath.Base(d))
	}
	assert.ElementsMatch(t, []string{"docs", "drafts"}, dirNames)

	var fileNames []string
	for _, f := range files {
		fileNames = append(fileNames, f.Name())
	}
	assert.ElementsMatch(t, []string{"a.md", "b.md", "c.md"}, fileNames)
}
