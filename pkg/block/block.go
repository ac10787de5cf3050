package block

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ccollicutt/blockrm/pkg/textfile"
)

// Locate scans lines once and returns the span of the first block.
//
// The start is the first line containing m.Start. From the start line on,
// the first line containing m.End whose preceding m.Window lines (joined,
// current line excluded) contain m.Context is the end.
func Locate(lines []string, m Markers) (Span, error) {
	start := -1

	for i, line := range lines {
		if start < 0 && strings.Contains(line, m.Start) {
			start = i
		}
		if start < 0 {
			continue
		}

		if strings.Contains(line, m.End) && contextBefore(lines, i, m) {
			return Span{Start: start, End: i}, nil
		}
	}

	if start < 0 {
		return Span{}, ErrStartNotFound
	}
	return Span{}, ErrEndNotFound
}

func contextBefore(lines []string, i int, m Markers) bool {
	from := max(0, i-m.Window)
	return strings.Contains(strings.Join(lines[from:i], ""), m.Context)
}

// Splice returns a new slice holding lines with the span removed.
// The input slice is not modified.
func Splice(lines []string, s Span) []string {
	out := make([]string, 0, len(lines)-s.Len())
	out = append(out, lines[:s.Start]...)
	out = append(out, lines[s.End+1:]...)
	return out
}

// RemoverOption configures a Remover.
type RemoverOption func(*Remover)

// WithDryRun computes the removal without writing the file.
func WithDryRun(dryRun bool) RemoverOption {
	return func(r *Remover) {
		r.dryRun = dryRun
	}
}

// Remover deletes a block from a file in place.
type Remover struct {
	markers Markers
	dryRun  bool
}

// NewRemover creates a Remover for the given markers.
func NewRemover(m Markers, opts ...RemoverOption) (*Remover, error) {
	if m.Start == "" {
		return nil, errors.New("start marker is required")
	}
	if m.End == "" {
		return nil, errors.New("end tag is required")
	}
	if m.Window < 1 {
		return nil, fmt.Errorf("window must be >= 1, got %d", m.Window)
	}

	r := &Remover{markers: m}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Remove reads path, removes the block and writes the result back.
// The file is only written once the span is found and the new content is
// fully computed; on any error it is left untouched.
func (r *Remover) Remove(ctx context.Context, path string) (*Result, error) {
	lines, err := textfile.ReadLines(path)
	if err != nil {
		return nil, err
	}

	span, err := Locate(lines, r.markers)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:   path,
		Span:   span,
		Before: lines,
		After:  Splice(lines, span),
	}

	if r.dryRun {
		return result, nil
	}

	if err := textfile.WriteLines(ctx, path, result.After); err != nil {
		return nil, err
	}
	result.Written = true

	return result, nil
}
