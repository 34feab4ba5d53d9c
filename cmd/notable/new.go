package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notable/cmd/notable/cli"
	"notable/internal/config"
	"notable/internal/dispatch"
	"notable/internal/errors"
	"notable/internal/note"
)

// NewNewCmd creates the note-creation command
func NewNewCmd() *cobra.Command {
	var directory string

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a note and open it in your editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			dir := config.ExpandPath(directory)
			if dir == "" {
				dir = cfg.NotesDir()
			}

			path, err := note.Create(name, dir)
			if err != nil {
				if errors.IsAlreadyExists(err) {
					cli.PrintError(fmt.Sprintf("Note '%s' already exists.", name))
					return nil
				}
				return err
			}
			cli.PrintSuccess(fmt.Sprintf("Note '%s' created in %s.", name, dir))

			// Open the new note in the editor; the file stays either way
			if err := dispatch.New(cfg).Open(path); err != nil {
				cli.PrintError(fmt.Sprintf("Error opening the note with the text editor: %v", err))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&directory, "directory", "d", "", "directory where the note should be created (default from config)")

	return cmd
}
