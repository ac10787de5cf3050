package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/blockrm/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a blockrm configuration file without touching the target.

Checks:
  - YAML syntax
  - Required fields (name, path, start_marker, end_tag)
  - Window size
  - Target file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Name:    %s\n", cfg.Name)
	fmt.Fprintf(w, "  Path:    %s\n", cfg.Path)
	fmt.Fprintf(w, "  Start:   %q\n", cfg.StartMarker)
	fmt.Fprintf(w, "  End:     %q\n", cfg.EndTag)
	if cfg.Context != "" {
		fmt.Fprintf(w, "  Context: %q within %d lines\n", cfg.Context, cfg.Window)
	} else {
		fmt.Fprintf(w, "  Context: (none)\n")
	}

	if _, err := os.Stat(cfg.Path); err != nil {
		fmt.Fprintf(w, "\nWarning: target file %s: %v\n", cfg.Path, err)
	}

	return nil
}
