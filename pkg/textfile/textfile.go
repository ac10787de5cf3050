// Package textfile reads UTF-8 text files as lines and rewrites them atomically.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when a file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// defaultBufSize is the write buffer size used by WriteLines.
const defaultBufSize = 64 * 1024

// ReadLines reads the whole file at path and splits it into lines.
// Each line keeps its terminator ("\n" or "\r\n"); a trailing line without
// a newline is returned as-is. The file is closed before ReadLines returns.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided target path is expected
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading %s: %w", path, ErrInvalidEncoding)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits text after every newline, keeping terminators.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for len(text) > 0 {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
	}

	return lines
}

// WriteLines replaces the file at path with the concatenation of lines.
// The content goes to a temporary file in the same directory which is synced
// and renamed over path, so the target is either fully replaced or untouched.
// The existing file mode is preserved. A symlinked path is resolved first so
// the file it points to is replaced and the link itself survives.
func WriteLines(ctx context.Context, path string, lines []string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".blockrm-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	bw := bufio.NewWriterSize(tmp, defaultBufSize)
	if _, err := io.Copy(bw, strings.NewReader(strings.Join(lines, ""))); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

