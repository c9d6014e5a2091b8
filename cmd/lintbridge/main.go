package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lintbridge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lintbridge",
	Short: "Lint adapter driving the sglint engine",
	Long:  `lintbridge resolves layered lint configuration, drives the underlying analysis engine and merges duplicate findings into one deterministic report`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor turns the --color flag into a concrete decision for f.
func resolveColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}
