package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

// NewConfigsCommand creates the configs command
func NewConfigsCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "configs <project>",
		Short: "List the project's build configurations",
		Long: `List the build configuration names declared in the project's own
configuration list, in declaration order.

Examples:
  gopbx configs App.xcodeproj`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			proj, err := project.Open(args[0], project.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}

			for _, name := range proj.ConfigurationNames() {
				console.Println(name)
			}
			return nil
		},
	}
}
