package output

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around the removal.
const diffContext = 3

// UnifiedDiff renders the change from before to after as a unified diff.
func UnifiedDiff(path string, before, after []string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        terminated(before),
		B:        terminated(after),
		FromFile: path,
		ToFile:   path,
		Context:  diffContext,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("rendering diff for %s: %w", path, err)
	}
	return text, nil
}

// terminated normalizes line endings so a final line without a newline does
// not run into the next diff line.
func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\n")
		out[i] = strings.TrimSuffix(line, "\r") + "\n"
	}
	return out
}
