// Package cases loads YAML suites of formatting vectors and runs them
// through the cfmt engine.
//
// A suite file looks like:
//
//	name: integers
//	cases:
//	  - name: alt hex
//	    format: "%#06x"
//	    args: [{int: 16}]
//	    want: "0x0010"
//	  - name: short
//	    format: "%d %d"
//	    args: [{int: 1}]
//	    error: not-enough-args
package cases

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bjaus/cfmt"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSuite = errors.New("invalid suite")
	ErrUnknownType  = errors.New("unknown argument type")
)

// expectedErrors maps the names accepted by a case's error field.
var expectedErrors = map[string]error{
	"parse":           cfmt.ErrParse,
	"wrong-type":      cfmt.ErrWrongType,
	"not-enough-args": cfmt.ErrNotEnoughArgs,
	"too-many-args":   cfmt.ErrTooManyArgs,
	"unknown":         cfmt.ErrUnknown,
}

// ErrorNames returns the names accepted by a case's error field.
func ErrorNames() []string {
	names := make([]string, 0, len(expectedErrors))
	for n := range expectedErrors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a single format string, its arguments and the expected outcome.
// Exactly one of Want and Error is set.
type Case struct {
	Name   string  `yaml:"name"`
	Format string  `yaml:"format"`
	Args   []Value `yaml:"args"`
	Want   *string `yaml:"want"`
	Error  string  `yaml:"error"`
}

// Load decodes and validates a suite.
func Load(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, ErrUnknownType) {
			return Suite{}, err
		}
		return Suite{}, fmt.Errorf("%w: %s", ErrInvalidSuite, err)
	}
	if err := s.validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// LoadFile loads the suite stored at path. A suite without a name is named
// after the file.
func LoadFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s Suite) validate() error {
	for i, c := range s.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		switch {
		case c.Want != nil && c.Error != "":
			return fmt.Errorf("%w: case %s sets both want and error", ErrInvalidSuite, name)
		case c.Want == nil && c.Error == "":
			return fmt.Errorf("%w: case %s sets neither want nor error", ErrInvalidSuite, name)
		case c.Error != "":
			if _, ok := expectedErrors[c.Error]; !ok {
				return fmt.Errorf("%w: case %s expects unknown error %q", ErrInvalidSuite, name, c.Error)
			}
		}
	}
	return nil
}

// Arguments returns the decoded arguments of c.
func (c Case) Arguments() []cfmt.Arg {
	args := make([]cfmt.Arg, len(c.Args))
	for i, v := range c.Args {
		args[i] = v.Arg
	}
	return args
}
