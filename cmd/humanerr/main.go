package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NSPC911/human-errors/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "humanerr",
	Short: "Configuration-file parser with human-friendly error frames",
	Long:  `humanerr parses JSON, TOML and YAML documents and renders compiler-style diagnostic frames for decode failures`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Rendered decode failures exit with status 1 before control
// returns here.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
