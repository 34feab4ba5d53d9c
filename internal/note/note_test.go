package note_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notable/internal/errors"
	"notable/internal/note"
)

func TestCreate(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("creates note with heading", func(t *testing.T) {
		path, err := note.Create("foo", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "foo.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# foo", string(content))
	})

	t.Run("second create reports AlreadyExists and keeps content", func(t *testing.T) {
		path := filepath.Join(tmpDir, "foo.md")
		require.NoError(t, os.WriteFile(path, []byte("# foo\n\nedited"), 0644))

		_, err := note.Create("foo", tmpDir)
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# foo\n\nedited", string(content), "existing note must not be overwritten")
	})

	t.Run("missing directory errors", func(t *testing.T) {
		_, err := note.Create("bar", filepath.Join(tmpDir, "no-such-dir"))
		assert.Error(t, err)
	})
}
