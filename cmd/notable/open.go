package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"notable/cmd/notable/cli"
	"notable/internal/config"
	"notable/internal/dispatch"
	"notable/internal/errors"
	"notable/internal/scan"
	"notable/internal/selector"
)

// NewOpenCmd creates the open command
func NewOpenCmd() *cobra.Command {
	var (
		directory string
		pdfOnly   bool
		uni       bool
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a note, PDF, or EPUB using the appropriate viewer",
		Long:  `Scan the notes directory, pick a file with the fuzzy finder, and open it with the viewer configured for its type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.ExpandPath(directory)
			if root == "" {
				root = cfg.NotesDir()
			}
			if uni {
				root = filepath.Join(root, cfg.Directories.University)
			}

			exts := cfg.Scan.Extensions
			if pdfOnly {
				exts = []string{".pdf"}
			}

			scanner, err := scan.New(cfg.Scan.Exclude)
			if err != nil {
				return err
			}
			files, err := scanner.Files(root, exts)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				cli.PrintError("No files found.")
				return nil
			}

			sel := selector.New(cfg.Selector.Command, cfg.Selector.Args, root)
			entry, ok, err := sel.Pick(files)
			if err != nil {
				cli.PrintError(err.Error())
				return nil
			}
			if !ok {
				cli.PrintError("No file selected.")
				return nil
			}

			if err := dispatch.New(cfg).Open(entry.Path); err != nil {
				if errors.IsUnsupportedFileType(err) {
					cli.PrintError("Unsupported file type.")
				} else {
					cli.PrintError(err.Error())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&directory, "directory", "", "directory to search for notes and files (default from config)")
	cmd.Flags().BoolVar(&pdfOnly, "pdf-only", false, "search for PDF files only")
	cmd.Flags().BoolVar(&uni, "uni", false, "search in the university subdirectory only")

	return cmd
}
