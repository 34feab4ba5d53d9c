package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notable/cmd/notable/cli"
	"notable/internal/config"
	"notable/internal/errors"
	"notable/internal/project"
)

// NewProjectCmd creates the project-scaffolding command
func NewProjectCmd() *cobra.Command {
	var (
		template  string
		initGit   bool
		directory string
	)

	cmd := &cobra.Command{
		Use:   "project NAME",
		Short: "Create a new project folder based on a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			dir := config.ExpandPath(directory)
			if dir == "" {
				dir = cfg.ProjectsDir()
			}

			_, err := project.Create(name, template, dir, initGit)
			switch {
			case err == nil:
				cli.PrintSuccess(fmt.Sprintf("Project '%s' created with template '%s'.", name, template))
				if initGit {
					cli.PrintSuccess("Git repository initialized.")
				}
			case errors.IsAlreadyExists(err):
				cli.PrintError(fmt.Sprintf("Project '%s' already exists.", name))
			case errors.IsUnknownTemplate(err):
				cli.PrintError(fmt.Sprintf("Template '%s' not found.", template))
				cli.PrintInfo("Available templates: " + strings.Join(project.Names(), ", "))
			case errors.IsSubprocessFailed(err):
				// The scaffold is in place; only git init failed
				cli.PrintSuccess(fmt.Sprintf("Project '%s' created with template '%s'.", name, template))
				cli.PrintError("Failed to initialize Git repository.")
			default:
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "default", "project template to use")
	cmd.Flags().BoolVarP(&initGit, "git", "g", false, "initialize a Git repository in the project folder")
	cmd.Flags().StringVar(&directory, "directory", "", "custom project folder path (default from config)")

	return cmd
}
