package main

import (
	"os/exec"

	"github.com/spf13/cobra"

	"notable/cmd/notable/cli"
	"notable/internal/config"
	"notable/internal/log"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "notable",
		Short:   "Manage your files and notes",
		Long:    `Notable finds your notes, documents, and projects, lets you pick one with a fuzzy finder, and opens it in the right viewer.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			// Load config
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				cli.PrintWarning(configErr.Error())
				cli.PrintInfo("Using default settings.")
				cfg = config.New()
			}

			// Check that the fuzzy finder is installed
			if _, err := exec.LookPath(cfg.Selector.Command); err != nil {
				cli.PrintWarning(cfg.Selector.Command + " is not installed! Interactive selection won't work.")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/notable/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewOpenCmd())
	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewProjectCmd())
	rootCmd.AddCommand(NewSearchCmd())

	return rootCmd
}
