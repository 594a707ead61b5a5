// cmd/gopbx/cli/app.go
package cli

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gopbx/cmd/gopbx/output"
)

var rootCmd = &cobra.Command{
	Use:   "gopbx",
	Short: "Xcode project file editor",
	Long: `gopbx loads an Xcode project.pbxproj file, applies structural edits
(add source files, preprocessor defines, search paths, build settings),
and re-exports it in the layout Xcode expects.

Complete documentation is available at https://github.com/willibrandon/gopbx`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize console
	Console = output.DefaultConsole()

	rootCmd.PersistentFlags().StringP("verbosity", "", "normal", "Display verbosity (quiet, normal, detailed, diagnostic)")
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
