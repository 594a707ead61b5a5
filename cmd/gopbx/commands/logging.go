// Package commands implements the gopbx CLI subcommands.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/observability"
)

// loggerFor builds the library logger from the persistent verbosity
// flag. Normal and quiet runs keep the engine silent; the console owns
// all user-facing output.
func loggerFor(cmd *cobra.Command) observability.Logger {
	verbosity, _ := cmd.Flags().GetString("verbosity")
	switch verbosity {
	case "detailed":
		return observability.NewLogger(os.Stderr, observability.DebugLevel)
	case "diagnostic":
		return observability.NewLogger(os.Stderr, observability.VerboseLevel)
	default:
		return observability.NewNullLogger()
	}
}

// applyVerbosity maps the verbosity flag onto the console.
func applyVerbosity(cmd *cobra.Command, console *output.Console) {
	verbosity, _ := cmd.Flags().GetString("verbosity")
	switch verbosity {
	case "quiet":
		console.SetVerbosity(output.VerbosityQuiet)
	case "detailed", "diagnostic":
		console.SetVerbosity(output.VerbosityDetailed)
	default:
		console.SetVerbosity(output.VerbosityNormal)
	}
}
