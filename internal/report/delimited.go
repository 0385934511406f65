package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/cfmt/internal/cases"
)

// writeTSV writes one tab-separated line per result. Cells are already
// quoted by row, so embedded tabs and newlines appear as escapes.
func writeTSV(w io.Writer, results []cases.Result) error {
	if len(results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, strings.Join(row(r), "\t")); err != nil {
			return err
		}
	}
	return nil
}
