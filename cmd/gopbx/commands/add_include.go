package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

type addIncludeOptions struct {
	outputPath string
}

// NewAddIncludeCommand creates the add-include command
func NewAddIncludeCommand(console *output.Console) *cobra.Command {
	opts := &addIncludeOptions{}

	cmd := &cobra.Command{
		Use:   "add-include <project> <target> <path>...",
		Short: "Add header search paths to a target",
		Long: `Append header search paths to HEADER_SEARCH_PATHS of every build
configuration of a target. Paths already present are skipped.

Examples:
  gopbx add-include App.xcodeproj App vendor/include third_party/include`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddInclude(cmd, console, args[0], args[1], args[2:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the edited project here instead of in place")

	return cmd
}

func runAddInclude(cmd *cobra.Command, console *output.Console, projectPath, targetName string, paths []string, opts *addIncludeOptions) error {
	applyVerbosity(cmd, console)

	proj, err := project.Open(projectPath, project.WithLogger(loggerFor(cmd)))
	if err != nil {
		return err
	}

	if err := proj.AddHeaderSearchPaths(targetName, paths); err != nil {
		return err
	}

	if err := exportTo(proj, opts.outputPath); err != nil {
		return err
	}

	console.Success("Added %d search path(s) to target %s", len(paths), targetName)
	return nil
}
