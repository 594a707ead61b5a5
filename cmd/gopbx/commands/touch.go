package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

type touchOptions struct {
	outputPath string
}

// NewTouchCommand creates the touch command
func NewTouchCommand(console *output.Console) *cobra.Command {
	opts := &touchOptions{}

	cmd := &cobra.Command{
		Use:   "touch <project>",
		Short: "Load and re-export a project in canonical layout",
		Long: `Parse a project and write it back without edits. Useful for
normalizing a hand-edited file into the layout Xcode emits, and for
verifying a project round-trips cleanly.

Examples:
  gopbx touch App.xcodeproj
  gopbx touch App.xcodeproj -o /tmp/App.xcodeproj`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			proj, err := project.Open(args[0], project.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			if err := exportTo(proj, opts.outputPath); err != nil {
				return err
			}

			console.Success("Exported %s", proj.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the project here instead of in place")

	return cmd
}
