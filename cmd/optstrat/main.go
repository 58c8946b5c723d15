// Command optstrat analyzes multi-leg option strategies from the terminal.
package main

import (
	"os"

	"github.com/fatih/color"

	"optstrat/internal/cli"
	"optstrat/internal/logging"
)

// Build-time variables (set via -ldflags).
var (
	version = "0.1.0"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildDate = date

	// Replaced by the configured logger once flags and config are parsed.
	logger := logging.NewLoggerWithConfig(logging.LogConfig{Level: "warn", Console: true})

	rootCmd := cli.NewRootCmd(logger)
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
