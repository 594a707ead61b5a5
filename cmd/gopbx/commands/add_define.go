package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

type addDefineOptions struct {
	outputPath string
}

// NewAddDefineCommand creates the add-define command
func NewAddDefineCommand(console *output.Console) *cobra.Command {
	opts := &addDefineOptions{}

	cmd := &cobra.Command{
		Use:   "add-define <project> <target> <config> <define>...",
		Short: "Add preprocessor defines to a target configuration",
		Long: `Append preprocessor defines to GCC_PREPROCESSOR_DEFINITIONS of one
build configuration. Defines already present are skipped, so the
command is safe to repeat.

Examples:
  gopbx add-define App.xcodeproj App Debug DEBUG_MENU=1
  gopbx add-define App.xcodeproj App Release NDEBUG FOO=1`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddDefine(cmd, console, args[0], args[1], args[2], args[3:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the edited project here instead of in place")

	return cmd
}

func runAddDefine(cmd *cobra.Command, console *output.Console, projectPath, targetName, configName string, defines []string, opts *addDefineOptions) error {
	applyVerbosity(cmd, console)

	proj, err := project.Open(projectPath, project.WithLogger(loggerFor(cmd)))
	if err != nil {
		return err
	}

	if err := proj.AddPreprocessorDefines(targetName, configName, defines); err != nil {
		return err
	}

	if err := exportTo(proj, opts.outputPath); err != nil {
		return err
	}

	console.Success("Added %d define(s) to %s/%s", len(defines), targetName, configName)
	return nil
}
