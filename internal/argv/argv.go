// Package argv converts untyped command-line strings into typed cfmt
// arguments, the way the printf(1) utility interprets its operands.
package argv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bjaus/cfmt"
)

// Coerce assigns a type to each raw string by walking the conversions of t.
// A '*' width or precision consumes an int; the value then takes the type
// its conversion expects.
func Coerce(t cfmt.Template, raw []string) ([]cfmt.Arg, error) {
	var args []cfmt.Arg
	next := 0
	take := func(spec cfmt.Specifier) (string, error) {
		if next >= len(raw) {
			return "", fmt.Errorf("%w: %%%s needs operand %d, have %d", cfmt.ErrNotEnoughArgs, spec.Conversion, next+1, len(raw))
		}
		s := raw[next]
		next++
		return s, nil
	}

	for _, spec := range t.Conversions() {
		if spec.Conversion == cfmt.Percent {
			continue
		}
		for _, p := range []cfmt.Param{spec.Width, spec.Precision} {
			if !p.FromArgument {
				continue
			}
			s, err := take(spec)
			if err != nil {
				return nil, err
			}
			n, err := parseSigned(s, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid width or precision %q", cfmt.ErrWrongType, s)
			}
			args = append(args, cfmt.Int(n))
		}
		s, err := take(spec)
		if err != nil {
			return nil, err
		}
		a, err := convert(spec.Conversion, s)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}

	if next < len(raw) {
		return nil, fmt.Errorf("%w: %d operands, %d used", cfmt.ErrTooManyArgs, len(raw), next)
	}
	return args, nil
}

func convert(c cfmt.Conversion, s string) (cfmt.Arg, error) {
	switch c {
	case cfmt.DecInt:
		n, err := parseSigned(s, 64)
		if err != nil {
			return nil, invalid(c, s)
		}
		return cfmt.Int64(n), nil
	case cfmt.OctInt, cfmt.HexLower, cfmt.HexUpper:
		n, err := parseUnsigned(s)
		if err != nil {
			return nil, invalid(c, s)
		}
		return cfmt.Uint64(n), nil
	case cfmt.SciLower, cfmt.SciUpper, cfmt.FixedLower, cfmt.FixedUpper,
		cfmt.CompactLower, cfmt.CompactUpper, cfmt.HexFloatLower, cfmt.HexFloatUpper:
		f, err := parseFloat(s)
		if err != nil {
			return nil, invalid(c, s)
		}
		return cfmt.Float64(f), nil
	case cfmt.Char:
		r, _ := utf8.DecodeRuneInString(s)
		if s == "" {
			r = 0
		}
		return cfmt.Rune(r), nil
	default:
		return cfmt.Text(s), nil
	}
}

func invalid(c cfmt.Conversion, s string) error {
	return fmt.Errorf("%w: %q is not a valid operand for %%%s", cfmt.ErrWrongType, s, c)
}

// charConstant reports the value of a printf(1) character constant: an
// operand starting with a single or double quote evaluates to the code point
// of the character after it.
func charConstant(s string) (rune, bool) {
	if len(s) < 2 || (s[0] != '\'' && s[0] != '"') {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return r, true
}

func parseSigned(s string, bits int) (int64, error) {
	if r, ok := charConstant(s); ok {
		return int64(r), nil
	}
	return strconv.ParseInt(strings.TrimSpace(s), 0, bits)
}

// parseUnsigned accepts negative input and wraps it, as C's strtoul does.
func parseUnsigned(s string) (uint64, error) {
	if r, ok := charConstant(s); ok {
		return uint64(r), nil
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, 64)
		return uint64(n), err
	}
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, 64)
}

func parseFloat(s string) (float64, error) {
	if r, ok := charConstant(s); ok {
		return float64(r), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
