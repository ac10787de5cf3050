// Package cli provides the command-line interface for blockrm.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/blockrm/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors keeps cobra from printing this itself
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
// Run without a subcommand it behaves like "remove" on the default target.
func NewRootCommand() *cobra.Command {
	opts := &commands.RemoveOptions{}

	rootCmd := &cobra.Command{
		Use:   "blockrm",
		Short: "Remove a marker-delimited block from a markup file",
		Long: `blockrm deletes one block of lines from a markup source file and rewrites
the file in place.

The block starts at the first line containing the start marker and ends at the
first later line containing the end tag whose preceding window of lines contains
the context string. Markers are literal substrings; the markup is never parsed.

With no subcommand and no configuration, blockrm removes the tag management
popup from src/App.vue.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunRemove(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.BindRemoveFlags(rootCmd, opts)
	commands.BindDryRunFlag(rootCmd, opts)

	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewLocateCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
