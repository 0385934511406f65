// Package report renders suite results in several output formats.
//
// Use [ParseFormat] to convert a CLI flag string into a [Format] and
// [Write] to render results:
//
//	f, err := report.ParseFormat(flagValue)
//	report.Write(os.Stdout, f, results)
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/cfmt/internal/cases"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Plain    Format = "plain"
)

// goTemplatePrefix marks a format that renders each result through a
// text/template, e.g. "go-template={{.Suite}}/{{.Case}}".
const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, HTML, JSON, JSONL, YAML, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a format that renders each result with tmpl.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name. Names starting with "go-template=" are
// accepted as-is; the template is checked when results are written.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

var (
	header = []string{"Suite", "Case", "Status", "Format", "Want", "Got"}
	aligns = []Alignment{AlignLeft, AlignLeft, AlignCenter, AlignLeft, AlignLeft, AlignLeft}
)

// row returns the table cells of r. Expected and actual output are quoted
// so padding and control characters stay visible; an error stands in for
// the side that failed.
func row(r cases.Result) []string {
	want := strconv.Quote(r.Want)
	if r.WantErr != "" {
		want = "error: " + r.WantErr
	}
	got := strconv.Quote(r.Got)
	if r.Err != "" {
		got = "error: " + r.Err
	}
	return []string{r.Suite, r.Case, r.Status(), strconv.Quote(r.Format), want, got}
}

// Summary returns a one-line pass/fail count.
func Summary(results []cases.Result) string {
	failed := len(cases.Failed(results))
	return fmt.Sprintf("%d passed, %d failed", len(results)-failed, failed)
}

// Write renders results in format f.
func Write(w io.Writer, f Format, results []cases.Result) error {
	switch f {
	case Table:
		return writeTable(w, results)
	case Markdown:
		return writeMarkdown(w, results)
	case CSV:
		return writeCSV(w, results)
	case TSV:
		return writeTSV(w, results)
	case HTML:
		return writeHTML(w, results)
	case JSON:
		return writeJSON(w, results)
	case JSONL:
		return writeJSONL(w, results)
	case YAML:
		return writeYAML(w, results)
	case Plain:
		return writePlain(w, results)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, results)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
