package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notable/cmd/notable/cli"
	"notable/internal/config"
	"notable/internal/dispatch"
	"notable/internal/errors"
	"notable/internal/scan"
	"notable/internal/selector"
	"notable/pkg/types"
)

// NewSearchCmd creates the project-search command
func NewSearchCmd() *cobra.Command {
	var directory string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search and open files within the project directory",
		Long:  `Pick a project folder, then a file or subfolder inside it, and open the chosen file with the appropriate viewer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.ExpandPath(directory)
			if root == "" {
				root = cfg.ProjectsDir()
			}

			scanner, err := scan.New(cfg.Scan.Exclude)
			if err != nil {
				return err
			}

			folders, err := scanner.FirstLevelDirs(root)
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				cli.PrintError("No project folders found in " + root + ".")
				return nil
			}

			sel := selector.New(cfg.Selector.Command, cfg.Selector.Args, root)
			folderName, ok, err := sel.PickString(folders)
			if err != nil {
				cli.PrintError(err.Error())
				return nil
			}
			if !ok {
				return nil
			}
			projectDir := filepath.Join(root, folderName)

			// Second level: every subfolder and file of the chosen project
			dirs, files, err := scanner.Deep(projectDir)
			if err != nil {
				return err
			}
			if len(dirs) == 0 && len(files) == 0 {
				cli.PrintInfo("No files or subfolders found in '" + projectDir + "'.")
				return nil
			}

			candidates := make([]types.FileEntry, 0, len(dirs)+len(files))
			for _, dir := range dirs {
				candidates = append(candidates, types.FileEntry{Path: dir})
			}
			candidates = append(candidates, files...)

			sel.Root = projectDir
			entry, ok, err := sel.Pick(candidates)
			if err != nil {
				cli.PrintError(err.Error())
				return nil
			}
			if !ok {
				cli.PrintError("No item selected.")
				return nil
			}

			// A chosen subfolder gets one more pick across its files
			if info, statErr := os.Stat(entry.Path); statErr == nil && info.IsDir() {
				inner, err := scanner.Shallow(entry.Path)
				if err != nil {
					return err
				}
				if len(inner) == 0 {
					cli.PrintError("No files found in the selected folder.")
					return nil
				}

				sel.Root = entry.Path
				entry, ok, err = sel.Pick(inner)
				if err != nil {
					cli.PrintError(err.Error())
					return nil
				}
				if !ok {
					cli.PrintError("No file selected in the folder.")
					return nil
				}
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

	cmd.Flags().StringVar(&directory, "directory", "", "projects directory to search (default from config)")

	return cmd
}
