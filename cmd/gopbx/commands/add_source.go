package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

type addSourceOptions struct {
	compileFlags string
	sourceTree   string
	outputPath   string
}

// NewAddSourceCommand creates the add-source command
func NewAddSourceCommand(console *output.Console) *cobra.Command {
	opts := &addSourceOptions{}

	cmd := &cobra.Command{
		Use:   "add-source <project> <target> <file>",
		Short: "Add a source file to a target",
		Long: `Add a source file to a target: a new file reference in the navigator
group matching the file's directory path, and a new entry at the end of
the target's sources build phase.

Examples:
  gopbx add-source App.xcodeproj App src/engine/render.c
  gopbx add-source App.xcodeproj App src/fast.c --compile-flags "-O3"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddSource(cmd, console, args[0], args[1], args[2], opts)
		},
	}

	cmd.Flags().StringVar(&opts.compileFlags, "compile-flags", "", "Per-file compiler flag override")
	cmd.Flags().StringVar(&opts.sourceTree, "source-tree", project.SourceTreeGroup, "Source tree the path is relative to")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the edited project here instead of in place")

	return cmd
}

func runAddSource(cmd *cobra.Command, console *output.Console, projectPath, targetName, filePath string, opts *addSourceOptions) error {
	applyVerbosity(cmd, console)

	proj, err := project.Open(projectPath, project.WithLogger(loggerFor(cmd)))
	if err != nil {
		return err
	}

	id, err := proj.AddSourceFile(filePath, targetName, &project.SourceFileOptions{
		SourceTree:   opts.sourceTree,
		CompileFlags: opts.compileFlags,
	})
	if err != nil {
		return err
	}

	if err := exportTo(proj, opts.outputPath); err != nil {
		return err
	}

	console.Success("Added %s to target %s (%s)", filePath, targetName, id)
	return nil
}

// exportTo saves in place, or to an alternate destination when set.
func exportTo(proj *project.Project, outputPath string) error {
	if outputPath != "" {
		return proj.Export(outputPath)
	}
	return proj.Save()
}
