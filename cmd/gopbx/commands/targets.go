package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

// NewTargetsCommand creates the targets command
func NewTargetsCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "targets <project>",
		Short: "List the project's targets",
		Long: `List the names of every target in the project, in declaration order.

Examples:
  gopbx targets App.xcodeproj`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			proj, err := project.Open(args[0], project.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}

			for _, name := range proj.TargetNames() {
				console.Println(name)
			}
			return nil
		},
	}
}
