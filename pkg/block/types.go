// Package block locates and removes a marker-delimited block of lines.
package block

import "errors"

// Markers describe the block to remove. All markers are literal substrings.
type Markers struct {
	// Start is contained in the first line of the block.
	Start string

	// End is contained in the last line of the block.
	End string

	// Context must appear within the Window lines preceding an End line
	// for that line to be accepted. An empty Context accepts any End line.
	Context string

	// Window is the number of preceding lines searched for Context.
	Window int
}

// Span is an inclusive range of 0-based line indices.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FirstLine returns the 1-based number of the first line in the span.
func (s Span) FirstLine() int {
	return s.Start + 1
}

// LastLine returns the 1-based number of the last line in the span.
func (s Span) LastLine() int {
	return s.End + 1
}

// Len returns the number of lines in the span.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Result describes a completed removal.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Span is the removed range.
	Span Span

	// Before and After hold the file lines before and after removal.
	Before []string
	After  []string

	// Written reports whether the file on disk was replaced.
	Written bool
}

var (
	// ErrBlockNotFound is wrapped by every locator failure.
	ErrBlockNotFound = errors.New("block not found")

	// ErrStartNotFound means no line contains the start marker.
	ErrStartNotFound = wrapNotFound("start marker not found")

	// ErrEndNotFound means no line after the start satisfies both the end tag
	// and the context window.
	ErrEndNotFound = wrapNotFound("no qualifying end tag after start marker")
)

type notFoundError struct {
	msg string
}

func wrapNotFound(msg string) error {
	return &notFoundError{msg: msg}
}

func (e *notFoundError) Error() string {
	return e.msg
}

func (e *notFoundError) Unwrap() error {
	return ErrBlockNotFound
}
