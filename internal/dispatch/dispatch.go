// Package dispatch maps file extensions to external viewer programs
// and launches them. The launch mode is an explicit part of each
// action: blocking actions are waited on and their exit status
// inspected, detached actions are started in their own session and
// outlive this process.
package dispatch

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"notable/internal/config"
	"notable/internal/errors"
	"notable/internal/log"
	"notable/pkg/types"
)

// Action describes how a file of a given type is opened.
type Action struct {
	Command string
	Args    []string
	Mode    types.LaunchMode
}

// Dispatcher holds the extension dispatch table.
type Dispatcher struct {
	actions map[string]Action
}

// New builds the dispatch table from configuration: markdown goes to
// the editor (blocking), PDFs to the PDF viewer (detached), EPUBs to
// the e-book viewer (blocking).
func New(cfg *config.Config) *Dispatcher {
	return NewWithActions(map[string]Action{
		".md":   {Command: cfg.Viewers.Editor.Command, Args: cfg.Viewers.Editor.Args, Mode: types.Blocking},
		".pdf":  {Command: cfg.Viewers.PDF.Command, Args: cfg.Viewers.PDF.Args, Mode: types.Detached},
		".epub": {Command: cfg.Viewers.Epub.Command, Args: cfg.Viewers.Epub.Args, Mode: types.Blocking},
	})
}

// NewWithActions builds a dispatcher from an explicit table.
func NewWithActions(actions map[string]Action) *Dispatcher {
	normalized := make(map[string]Action, len(actions))
	for ext, action := range actions {
		normalized[strings.ToLower(ext)] = action
	}
	return &Dispatcher{actions: normalized}
}

// Supports reports whether the extension has a configured action.
func (d *Dispatcher) Supports(ext string) bool {
	_, ok := d.actions[strings.ToLower(ext)]
	return ok
}

// Open launches the viewer configured for the file's extension. An
// extension with no action yields an UnsupportedFileType error and no
// process is launched. Launch failures propagate as subprocess errors.
func (d *Dispatcher) Open(path string) error {
	entry := types.NewFileEntry(path)
	action, ok := d.actions[entry.Ext]
	if !ok {
		return errors.NewFileError("unsupported file type", path, errors.UnsupportedFileType, nil)
	}
	return Launch(action, path)
}

// Launch runs an action against a file path.
func Launch(action Action, path string) error {
	args := append(append([]string{}, action.Args...), path)
	cmd := exec.Command(action.Command, args...)

	switch action.Mode {
	case types.Detached:
		// Own session: the viewer keeps running after this tool exits
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err := cmd.Start(); err != nil {
			return errors.NewCommandError("failed to launch viewer", action.Command, err)
		}
		log.Debugf("launched %s detached (pid %d)", action.Command, cmd.Process.Pid)
		return cmd.Process.Release()
	default:
		// Interactive programs need the terminal
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return errors.NewCommandError("viewer exited with an error", action.Command, err)
		}
		return nil
	}
}
