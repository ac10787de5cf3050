package output

import (
	"context"
	"fmt"
	"io"

	"github.com/rodaine/table"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !report.Found {
		return f.formatNotFound(report, w)
	}
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatNotFound(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Cannot find %s section\n", report.Name)
	if f.opts.Verbose && report.Reason != "" {
		fmt.Fprintf(w, "  %s: %s\n", report.Path, report.Reason)
	}
	return nil
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%s: %s section lines %d to %d (%s)\n",
		report.Path, report.Name, report.FirstLine, report.LastLine, report.Mode)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Found %s section: lines %d to %d\n", report.Name, report.FirstLine, report.LastLine)

	switch report.Mode {
	case ModeDryRun:
		if report.Diff != "" {
			fmt.Fprintln(w)
			fmt.Fprint(w, report.Diff)
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Dry run: %s not modified\n", report.Path)
	case ModeRemove:
		fmt.Fprintf(w, "Successfully removed %s section\n", report.Name)
		if report.Written {
			fmt.Fprintln(w, "File saved")
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w)
		tbl := table.New("File", "Lines before", "Removed", "Lines after").WithWriter(w)
		tbl.AddRow(report.Path, report.LinesBefore, report.LinesRemoved, report.LinesAfter)
		tbl.Print()
	}

	return nil
}
