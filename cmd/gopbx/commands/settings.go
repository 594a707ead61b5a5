package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
	"github.com/willibrandon/gopbx/project"
)

// NewSettingsCommand creates the settings command with get/set subcommands
func NewSettingsCommand(console *output.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write build settings",
		Long: `Gets or sets build settings of one target configuration.

Examples:
  gopbx settings get App.xcodeproj App Debug PRODUCT_NAME
  gopbx settings set App.xcodeproj App Release OTHER_LDFLAGS "-lz"`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newSettingsGetCommand(console))
	cmd.AddCommand(newSettingsSetCommand(console))

	return cmd
}

func newSettingsGetCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get <project> <target> <config> [key]",
		Short: "Get a build setting (or list all keys)",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			proj, err := project.Open(args[0], project.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			view, err := proj.TargetConfiguration(args[1], args[2])
			if err != nil {
				return err
			}

			if len(args) == 3 {
				for _, key := range view.Keys() {
					console.Println(key)
				}
				return nil
			}

			key := args[3]
			if values := view.Strings(key); len(values) > 0 {
				console.Println(strings.Join(values, " "))
			}
			return nil
		},
	}
}

type settingsSetOptions struct {
	outputPath string
	appendList bool
}

func newSettingsSetCommand(console *output.Console) *cobra.Command {
	opts := &settingsSetOptions{}

	cmd := &cobra.Command{
		Use:   "set <project> <target> <config> <key> <value>",
		Short: "Set a build setting",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbosity(cmd, console)

			proj, err := project.Open(args[0], project.WithLogger(loggerFor(cmd)))
			if err != nil {
				return err
			}
			view, err := proj.TargetConfiguration(args[1], args[2])
			if err != nil {
				return err
			}

			key, value := args[3], args[4]
			if opts.appendList {
				view.AppendUnique(key, value)
			} else {
				view.SetString(key, value)
			}

			if err := exportTo(proj, opts.outputPath); err != nil {
				return err
			}

			console.Success("Set %s for %s/%s", key, args[1], args[2])
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.appendList, "append", false, "Append to a list setting instead of replacing")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the edited project here instead of in place")

	return cmd
}
