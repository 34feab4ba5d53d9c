package dispatch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notable/internal/config"
	"notable/internal/dispatch"
	"notable/internal/errors"
	"notable/pkg/types"
)

func TestNewBuildsTableFromConfig(t *testing.T) {
	cfg := config.New()
	d := dispatch.New(cfg)

	assert.True(t, d.Supports(".md"))
	assert.True(t, d.Supports(".PDF")) // case-insensitive
	assert.True(t, d.Supports(".epub"))
	assert.False(t, d.Supports(".xyz"))
}

func TestOpenUnsupportedType(t *testing.T) {
	// A table whose only viewer would fail loudly if it were launched
	d := dispatch.NewWithActions(map[string]dispatch.Action{
		".md": {Command: "definitely-not-a-real-viewer-binary", Mode: types.Blocking},
	})

	err := d.Open("/somewhere/archive.xyz")
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedFileType(err))
}

func TestOpenBlocking(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(tmpFile, []byte("# doc"), 0644))

	t.Run("successful viewer", func(t *testing.T) {
		d := dispatch.NewWithActions(map[string]dispatch.Action{
			".md": {Command: "true", Mode: types.Blocking},
		})
		assert.NoError(t, d.Open(tmpFile))
	})

	t.Run("viewer exits non-zero", func(t *testing.T) {
		d := dispatch.NewWithActions(map[string]dispatch.Action{
			".md": {Command: "false", Mode: types.Blocking},
		})
		err := d.Open(tmpFile)
		require.Error(t, err)
		assert.True(t, errors.IsSubprocessFailed(err))
	})

	t.Run("viewer binary missing", func(t *testing.T) {
		d := dispatch.NewWithActions(map[string]dispatch.Action{
			".md": {Command: "definitely-not-a-real-viewer-binary", Mode: types.Blocking},
		})
		err := d.Open(tmpFile)
		require.Error(t, err)
		assert.True(t, errors.IsSubprocessFailed(err))
	})
}

func TestOpenDetached(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(tmpFile, nil, 0644))

	t.Run("returns without waiting", func(t *testing.T) {
		d := dispatch.NewWithActions(map[string]dispatch.Action{
			".pdf": {Command: "sleep", Args: []string{"30"}, Mode: types.Detached},
		})

		start := time.Now()
		err := d.Open(tmpFile)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 5*time.Second, "detached launch must not block on the viewer")
	})

	t.Run("missing binary still reported", func(t *testing.T) {
		d := dispatch.NewWithActions(map[string]dispatch.Action{
			".pdf": {Command: "definitely-not-a-real-viewer-binary", Mode: types.Detached},
		})
		err := d.Open(tmpFile)
		require.Error(t, err)
		assert.True(t, errors.IsSubprocessFailed(err))
	})
}

func TestLaunchPassesFileArgument(t *testing.T) {
	// "test -f" exits zero only when the argument names a regular
	// file, so a passing run proves the path reached the command line.
	tmpFile := filepath.Join(t.TempDir(), "present.md")
	require.NoError(t, os.WriteFile(tmpFile, nil, 0644))

	err := dispatch.Launch(dispatch.Action{Command: "test", Args: []string{"-f"}, Mode: types.Blocking}, tmpFile)
	assert.NoError(t, err)

	err = dispatch.Launch(dispatch.Action{Command: "test", Args: []string{"-f"}, Mode: types.Blocking}, tmpFile+".missing")
	assert.Error(t, err)
}
