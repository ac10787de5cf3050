package output

import (
	"context"
	"io"
)

// Formatter renders a removal report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds a statistics table and the failure reason.
	Verbose bool

	// Quiet prints a single summary line.
	Quiet bool
}
