package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/blockrm/pkg/output"
)

// NewLocateCommand creates the locate command.
func NewLocateCommand() *cobra.Command {
	opts := &RemoveOptions{}

	cmd := &cobra.Command{
		Use:     "locate [file]",
		Aliases: []string{"find"},
		Short:   "Report the line range of the marked block without changing the file",
		Long: `Locate the block that remove would delete and print its 1-based inclusive
line range. The file is never written.

Exit codes:
  0 - Block found
  1 - Block not found
  2 - Configuration or I/O error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, output.ModeLocate)
		},
	}

	BindRemoveFlags(cmd, opts)

	return cmd
}
