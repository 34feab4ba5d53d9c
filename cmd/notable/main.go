package main

import (
	"fmt"
	"os"

	"notable/cmd/notable/cli"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()

	// Prepend logo to help message
	helpTemplate := cli.DrawNotableLogo() + "\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
