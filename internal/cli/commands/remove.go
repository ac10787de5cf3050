package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/blockrm/pkg/block"
	"github.com/ccollicutt/blockrm/pkg/config"
	"github.com/ccollicutt/blockrm/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// RemoveOptions holds command-line options shared by remove and locate.
type RemoveOptions struct {
	ConfigFile string
	Name       string
	Start      string
	End        string
	Context    string
	Window     int

	DryRun  bool
	Output  string
	Verbose bool
	Quiet   bool
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand() *cobra.Command {
	opts := &RemoveOptions{}

	cmd := &cobra.Command{
		Use:   "remove [file]",
		Short: "Remove the marked block from a file",
		Long: `Remove the first block that starts at a line containing the start marker
and ends at the first later line containing the end tag, provided the context
string appears within the preceding window of lines. The file is rewritten in
place and left untouched if the block cannot be found.

Without a file argument the configured path (default src/App.vue) is used.

Exit codes:
  0 - Block removed
  1 - Block not found
  2 - Configuration or I/O error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunRemove(cmd, args, opts)
		},
	}

	BindRemoveFlags(cmd, opts)
	BindDryRunFlag(cmd, opts)

	return cmd
}

// BindRemoveFlags registers the target and output flags on cmd.
func BindRemoveFlags(cmd *cobra.Command, opts *RemoveOptions) {
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML file describing the block")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Block name used in messages")
	cmd.Flags().StringVar(&opts.Start, "start", "", "Start marker substring")
	cmd.Flags().StringVar(&opts.End, "end", "", "End tag substring")
	cmd.Flags().StringVar(&opts.Context, "context", "", "Context substring required before the end tag (empty disables)")
	cmd.Flags().IntVar(&opts.Window, "window", 0, "Number of lines before the end tag searched for the context")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show statistics and failure reasons")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only")
}

// BindDryRunFlag registers --dry-run. Commands that never write leave it off.
func BindDryRunFlag(cmd *cobra.Command, opts *RemoveOptions) {
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the diff without writing the file")
}

// RunRemove removes the configured block, or previews it with --dry-run.
func RunRemove(cmd *cobra.Command, args []string, opts *RemoveOptions) error {
	mode := output.ModeRemove
	if opts.DryRun {
		mode = output.ModeDryRun
	}
	return run(cmd, args, opts, mode)
}

func run(cmd *cobra.Command, args []string, opts *RemoveOptions, mode output.Mode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, args, opts)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	remover, err := block.NewRemover(cfg.Markers(), block.WithDryRun(mode != output.ModeRemove))
	if err != nil {
		return fmt.Errorf("creating remover: %w", err)
	}

	var report *output.Report

	result, err := remover.Remove(ctx, cfg.Path)
	switch {
	case errors.Is(err, block.ErrBlockNotFound):
		report = output.NewNotFoundReport(cfg.Name, cfg.Path, mode, err)
	case err != nil:
		return fmt.Errorf("removing %s section: %w", cfg.Name, err)
	default:
		report = output.NewReport(cfg.Name, mode, result)
		if mode == output.ModeDryRun {
			if report.Diff, err = output.UnifiedDiff(cfg.Path, result.Before, result.After); err != nil {
				return err
			}
		}
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasIssues() {
		ExitCode = 1
	}

	return nil
}

// resolveConfig layers defaults, the config file, environment and flags.
// A positional file argument overrides the configured path.
func resolveConfig(ctx context.Context, cmd *cobra.Command, args []string, opts *RemoveOptions) (*config.Config, error) {
	var cfg *config.Config

	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		cfg.ApplyEnvironmentOverrides()
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Name = opts.Name
	}
	if flags.Changed("start") {
		cfg.StartMarker = opts.Start
	}
	if flags.Changed("end") {
		cfg.EndTag = opts.End
	}
	if flags.Changed("context") {
		cfg.Context = opts.Context
	}
	if flags.Changed("window") {
		cfg.Window = opts.Window
	}
	if len(args) > 0 {
		cfg.Path = args[0]
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}

func createFormatter(opts *RemoveOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
