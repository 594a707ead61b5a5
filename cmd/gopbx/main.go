// cmd/gopbx/main.go
package main

import (
	"fmt"
	"os"

	"github.com/willibrandon/gopbx/cmd/gopbx/cli"
	"github.com/willibrandon/gopbx/cmd/gopbx/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.Commit = commit
	cli.Date = date
	cli.SetupVersion()

	// Register commands
	cli.AddCommand(commands.NewTargetsCommand(cli.Console))
	cli.AddCommand(commands.NewConfigsCommand(cli.Console))
	cli.AddCommand(commands.NewSettingsCommand(cli.Console))
	cli.AddCommand(commands.NewAddSourceCommand(cli.Console))
	cli.AddCommand(commands.NewAddDefineCommand(cli.Console))
	cli.AddCommand(commands.NewAddIncludeCommand(cli.Console))
	cli.AddCommand(commands.NewTouchCommand(cli.Console))

	// Execute CLI
	if err := cli.Execute(); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
