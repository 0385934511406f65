package cfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrParse         = errors.New("malformed format string")
	ErrWrongType     = errors.New("wrong argument type")
	ErrNotEnoughArgs = errors.New("not enough arguments")
	ErrTooManyArgs   = errors.New("too many arguments")
	ErrUnknown       = errors.New("unknown formatting error")
)

// Sprintf formats values according to format and returns the result.
// Each value is converted with [Of]; values that already implement [Arg]
// are used as-is.
func Sprintf(format string, values ...any) (string, error) {
	args, err := Args(values...)
	if err != nil {
		return "", err
	}
	return Vsprintf(format, args)
}

// Vsprintf parses format and renders it against args.
func Vsprintf(format string, args []Arg) (string, error) {
	t, err := Parse(format)
	if err != nil {
		return "", err
	}
	return t.Render(args...)
}

// Fprintf formats values according to format and writes the result to w.
// Nothing is written if formatting fails.
func Fprintf(w io.Writer, format string, values ...any) (int, error) {
	s, err := Sprintf(format, values...)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, s)
}

// Render formats args according to the template. Arguments are consumed
// left to right: a '*' width first, then a '*' precision, then the value.
func (t Template) Render(args ...Arg) (string, error) {
	var sb strings.Builder
	next := 0
	pop := func(elem int) (Arg, error) {
		if next >= len(args) {
			return nil, fmt.Errorf("%w: conversion %d needs argument %d, have %d", ErrNotEnoughArgs, elem, next+1, len(args))
		}
		a := args[next]
		next++
		return a, nil
	}

	for i, elem := range t {
		if elem.Kind == Verbatim {
			sb.WriteString(elem.Text)
			continue
		}
		spec := elem.Spec
		if spec.Conversion == Percent {
			sb.WriteByte('%')
			continue
		}
		if spec.Width.FromArgument {
			a, err := pop(i)
			if err != nil {
				return "", err
			}
			w, ok := a.Int()
			if !ok {
				return "", fmt.Errorf("%w: width for %s must be an int, got %T", ErrWrongType, elem.Text, a)
			}
			if w < 0 {
				spec.LeftAdjust = true
				w = -w
			}
			spec.Width = Literal(w)
		}
		if spec.Precision.FromArgument {
			a, err := pop(i)
			if err != nil {
				return "", err
			}
			p, ok := a.Int()
			if !ok {
				return "", fmt.Errorf("%w: precision for %s must be an int, got %T", ErrWrongType, elem.Text, a)
			}
			if p < 0 {
				spec.Precision = Literal(defaultPrecision(spec.Conversion))
				spec.HasPrecision = false
			} else {
				spec.Precision = Literal(p)
			}
		}
		if spec.Width.FromArgument || spec.Precision.FromArgument {
			return "", fmt.Errorf("%w: %s left unresolved", ErrUnknown, elem.Text)
		}
		a, err := pop(i)
		if err != nil {
			return "", err
		}
		s, err := a.Format(spec)
		if err != nil {
			return "", fmt.Errorf("%w (%s with %T)", err, elem.Text, a)
		}
		sb.WriteString(s)
	}

	if next < len(args) {
		return "", fmt.Errorf("%w: %d supplied, %d used", ErrTooManyArgs, len(args), next)
	}
	return sb.String(), nil
}

// Write renders the template and writes the result to w.
func (t Template) Write(w io.Writer, args ...Arg) (int, error) {
	s, err := t.Render(args...)
	if err != nil {
		return 0, err
	}
	return io.WriteString(w, s)
}
