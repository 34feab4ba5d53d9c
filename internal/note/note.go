// Package note creates markdown note files.
package note

import (
	"fmt"
	"os"
	"path/filepath"

	"notable/internal/errors"
	"notable/internal/log"
)

// Create writes a new note named name under dir and returns its path.
// The file starts with a single markdown heading. An existing note is
// never overwritten; an AlreadyExists error is returned and the file
// is left untouched.
func Create(name, dir string) (string, error) {
	path := filepath.Join(dir, name+".md")

	if _, err := os.Stat(path); err == nil {
		return "", errors.NewFileError("note already exists", path, errors.AlreadyExists, nil)
	} else if !os.IsNotExist(err) {
		return "", errors.NewFileError("cannot check note path", path, errors.InvalidPath, err)
	}

	content := fmt.Sprintf("# %s", name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.NewFileError("failed to create note", path, errors.InvalidPath, err)
	}

	log.LogWithFields(log.F("path", path)).Debug("note created")
	return path, nil
}
