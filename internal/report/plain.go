package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/cfmt/internal/cases"
)

// writePlain writes one line per result and the failure diffs after it.
func writePlain(w io.Writer, results []cases.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s %s/%s\n", r.Status(), r.Suite, r.Case); err != nil {
			return err
		}
		if r.Pass || r.Diff == "" {
			continue
		}
		if _, err := io.WriteString(w, indent(r.Diff)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Summary(results))
	return err
}

// indent prefixes every line of s with four spaces and makes sure the
// result ends in a newline.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
