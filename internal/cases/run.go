package cases

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bjaus/cfmt"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultDiffContext is the number of unchanged lines shown around a
// mismatch.
const DefaultDiffContext = 3

// Result is the outcome of running one case.
type Result struct {
	Suite   string `json:"suite" yaml:"suite"`
	Case    string `json:"case" yaml:"case"`
	Format  string `json:"format" yaml:"format"`
	Want    string `json:"want,omitempty" yaml:"want,omitempty"`
	Got     string `json:"got,omitempty" yaml:"got,omitempty"`
	WantErr string `json:"wantErr,omitempty" yaml:"wantErr,omitempty"`
	Err     string `json:"err,omitempty" yaml:"err,omitempty"`
	Pass    bool   `json:"pass" yaml:"pass"`
	Diff    string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Status returns "PASS" or "FAIL".
func (r Result) Status() string {
	if r.Pass {
		return "PASS"
	}
	return "FAIL"
}

// Runner runs suites.
type Runner struct {
	// DiffContext is the number of context lines in unified diffs.
	DiffContext int
}

// Run runs every case of s with default settings.
func (s Suite) Run() []Result {
	return Runner{DiffContext: DefaultDiffContext}.Run(s)
}

// Run renders every case of s and compares it with the expectation.
func (r Runner) Run(s Suite) []Result {
	results := make([]Result, 0, len(s.Cases))
	for i, c := range s.Cases {
		results = append(results, r.runCase(s.Name, i, c))
	}
	return results
}

func (r Runner) runCase(suite string, i int, c Case) Result {
	res := Result{
		Suite:   suite,
		Case:    c.Name,
		Format:  c.Format,
		WantErr: c.Error,
	}
	if res.Case == "" {
		res.Case = "#" + strconv.Itoa(i+1)
	}
	if c.Want != nil {
		res.Want = *c.Want
	}

	got, err := cfmt.Vsprintf(c.Format, c.Arguments())
	if err != nil {
		res.Err = err.Error()
	} else {
		res.Got = got
	}

	switch {
	case c.Error != "":
		res.Pass = err != nil && errors.Is(err, expectedErrors[c.Error])
		if !res.Pass {
			res.Diff = fmt.Sprintf("want error %s, got %s", c.Error, describe(got, err))
		}
	case err != nil:
		res.Diff = fmt.Sprintf("want %q, got error: %v", res.Want, err)
	default:
		res.Pass = got == res.Want
		if !res.Pass {
			res.Diff = r.diff(res.Want, got)
		}
	}
	return res
}

func describe(got string, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return strconv.Quote(got)
}

// diff returns a unified diff of want and got. Single-line values are
// compared in quoted form so whitespace differences stay visible.
func (r Runner) diff(want, got string) string {
	a, b := difflib.SplitLines(want), difflib.SplitLines(got)
	if len(a) <= 1 && len(b) <= 1 {
		a, b = []string{strconv.Quote(want) + "\n"}, []string{strconv.Quote(got) + "\n"}
	}
	ud := difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "want",
		ToFile:   "got",
		Context:  r.DiffContext,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Sprintf("want %q, got %q", want, got)
	}
	return text
}

// Failed returns the failing results.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Pass {
			out = append(out, r)
		}
	}
	return out
}
