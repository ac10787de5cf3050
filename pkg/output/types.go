// Package output provides formatting for block removal results.
package output

import (
	"github.com/ccollicutt/blockrm/pkg/block"
)

// Mode is the operation a report describes.
type Mode string

const (
	ModeRemove Mode = "remove"
	ModeDryRun Mode = "dry-run"
	ModeLocate Mode = "locate"
)

// Report is the outcome of a single run.
type Report struct {
	// Name labels the block in messages.
	Name string `json:"name"`

	// Path is the processed file.
	Path string `json:"path"`

	Mode  Mode `json:"mode"`
	Found bool `json:"found"`

	// FirstLine and LastLine are the 1-based inclusive removed range.
	FirstLine int `json:"first_line,omitempty"`
	LastLine  int `json:"last_line,omitempty"`

	LinesBefore  int `json:"lines_before,omitempty"`
	LinesRemoved int `json:"lines_removed,omitempty"`
	LinesAfter   int `json:"lines_after,omitempty"`

	// Written reports whether the file on disk was replaced.
	Written bool `json:"written"`

	// Reason explains a locator failure.
	Reason string `json:"reason,omitempty"`

	// Diff is the unified diff of the removal, set for dry runs.
	Diff string `json:"diff,omitempty"`
}

// NewReport creates a Report from a located or removed block.
func NewReport(name string, mode Mode, result *block.Result) *Report {
	return &Report{
		Name:         name,
		Path:         result.Path,
		Mode:         mode,
		Found:        true,
		FirstLine:    result.Span.FirstLine(),
		LastLine:     result.Span.LastLine(),
		LinesBefore:  len(result.Before),
		LinesRemoved: result.Span.Len(),
		LinesAfter:   len(result.After),
		Written:      result.Written,
	}
}

// NewNotFoundReport creates a Report for a block that could not be located.
func NewNotFoundReport(name, path string, mode Mode, reason error) *Report {
	report := &Report{
		Name: name,
		Path: path,
		Mode: mode,
	}
	if reason != nil {
		report.Reason = reason.Error()
	}
	return report
}

// HasIssues returns true if the block was not found.
func (r *Report) HasIssues() bool {
	return !r.Found
}
