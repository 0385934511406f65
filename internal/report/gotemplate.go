package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/bjaus/cfmt/internal/cases"
)

// writeGoTemplate executes tmpl once per result, each followed by a
// newline. Besides the Result fields, templates can call .Status.
func writeGoTemplate(w io.Writer, tmpl string, results []cases.Result) error {
	t, err := template.New("result").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, r := range results {
		if err := t.Execute(w, r); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
