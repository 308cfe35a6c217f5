package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "dispa",
	Short: "dispa - timeline animation compiler for display entities",
	Long: `Dispa compiles .dspa timeline sources into scoreboard-driven mcfunction files.
Each source file describes one animation: timed transform statements, nested
timing blocks, and an end terminator. The compiler emits one function per
source file plus one trigger line per animation for the shared tick function.

This is a Go port of the original dispa compiler.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
