// Package selector drives an external interactive fuzzy finder. The
// finder is an opaque collaborator: candidates go in on stdin, one
// line per candidate, and the chosen line comes back on stdout. A
// non-zero exit means the user cancelled, which is an outcome, not an
// error.
package selector

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"notable/internal/errors"
	"notable/internal/log"
	"notable/pkg/types"
)

// Adapter runs the configured fuzzy-finder command.
type Adapter struct {
	Command string   // Finder executable, e.g. "fzf"
	Args    []string // Extra finder arguments
	Root    string   // Prefix stripped from candidate paths for display
}

// New creates an adapter for the given finder command.
func New(command string, args []string, root string) *Adapter {
	return &Adapter{Command: command, Args: args, Root: root}
}

// Pick presents the candidate files to the finder and returns the
// chosen entry. The second return value is false when nothing was
// chosen: an empty candidate list (the finder is never invoked) or a
// cancelled finder. Each candidate line carries its index so the
// selection maps back to the original entry even when display labels
// share a suffix.
func (a *Adapter) Pick(entries []types.FileEntry) (types.FileEntry, bool, error) {
	if len(entries) == 0 {
		return types.FileEntry{}, false, nil
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%d\t%s", i, entry.Label(a.Root))
	}

	choice, ok, err := a.run(lines)
	if err != nil || !ok {
		return types.FileEntry{}, false, err
	}

	idx, err := parseIndex(choice)
	if err != nil {
		return types.FileEntry{}, false, errors.NewCommandError("unexpected selector output", a.Command, err)
	}
	if idx < 0 || idx >= len(entries) {
		return types.FileEntry{}, false, errors.NewCommandError("selector returned an out-of-range choice", a.Command, nil)
	}
	return entries[idx], true, nil
}

// PickString presents plain strings (e.g. folder names) to the finder.
func (a *Adapter) PickString(items []string) (string, bool, error) {
	if len(items) == 0 {
		return "", false, nil
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d\t%s", i, item)
	}

	choice, ok, err := a.run(lines)
	if err != nil || !ok {
		return "", false, err
	}

	idx, err := parseIndex(choice)
	if err != nil {
		return "", false, errors.NewCommandError("unexpected selector output", a.Command, err)
	}
	if idx < 0 || idx >= len(items) {
		return "", false, errors.NewCommandError("selector returned an out-of-range choice", a.Command, nil)
	}
	return items[idx], true, nil
}

// run pipes the lines to the finder and captures its single-line
// choice. The finder inherits stderr so a TUI finder can draw.
func (a *Adapter) run(lines []string) (string, bool, error) {
	cmd := exec.Command(a.Command, a.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if _, isExit := err.(*exec.ExitError); isExit {
			// The finder exited non-zero: user cancelled
			log.Debugf("selector %s exited without a selection: %v", a.Command, err)
			return "", false, nil
		}
		return "", false, errors.NewCommandError("failed to run selector", a.Command, err)
	}

	choice := strings.TrimSpace(string(output))
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}

// parseIndex extracts the candidate index from a chosen line.
func parseIndex(line string) (int, error) {
	tag := line
	if tab := strings.IndexByte(line, '\t'); tab >= 0 {
		tag = line[:tab]
	}
	return strconv.Atoi(strings.TrimSpace(tag))
}
