package report

import (
	"fmt"
	"html"
	"io"

	"github.com/bjaus/cfmt/internal/cases"
)

func writeHTML(w io.Writer, results []cases.Result) error {
	if len(results) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, `<table class="cfmt-check">`); err != nil {
		return err
	}
	if err := writeHTMLRow(w, "thead", "th", header, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, r := range results {
		class := ` class="pass"`
		if !r.Pass {
			class = ` class="fail"`
		}
		if err := writeHTMLRow(w, "", "td", row(r), class); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <tfoot>\n    <tr><td colspan=\"%d\">%s</td></tr>\n  </tfoot>\n", len(header), html.EscapeString(Summary(results))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

// writeHTMLRow writes one <tr>. A non-empty section such as "thead" wraps
// the row in that element.
func writeHTMLRow(w io.Writer, section, tag string, cells []string, class string) error {
	if section != "" {
		if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "    <tr%s>\n", class); err != nil {
		return err
	}
	for i, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(i), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if section != "" {
		_, err := fmt.Fprintf(w, "  </%s>\n", section)
		return err
	}
	return nil
}

func alignStyle(col int) string {
	if col < len(aligns) && aligns[col] == AlignCenter {
		return ` style="text-align: center"`
	}
	return ""
}
