package cases

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/bjaus/cfmt"
	"gopkg.in/yaml.v3"
)

// Value is a typed argument written as a single-key mapping, e.g.
// {uint8: 65} or {string: "hi"}.
type Value struct {
	Type string
	Arg  cfmt.Arg
}

type decodeFunc func(s string) (cfmt.Arg, error)

func signed[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](bits int) decodeFunc {
	return func(s string) (cfmt.Arg, error) {
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return nil, err
		}
		return any(T(n)).(cfmt.Arg), nil
	}
}

func unsigned[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr](bits int) decodeFunc {
	return func(s string) (cfmt.Arg, error) {
		n, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return nil, err
		}
		return any(T(n)).(cfmt.Arg), nil
	}
}

var decoders = map[string]decodeFunc{
	"int8":    signed[cfmt.Int8](8),
	"int16":   signed[cfmt.Int16](16),
	"int32":   signed[cfmt.Int32](32),
	"int64":   signed[cfmt.Int64](64),
	"int":     signed[cfmt.Int](strconv.IntSize),
	"uint8":   unsigned[cfmt.Uint8](8),
	"uint16":  unsigned[cfmt.Uint16](16),
	"uint32":  unsigned[cfmt.Uint32](32),
	"uint64":  unsigned[cfmt.Uint64](64),
	"uint":    unsigned[cfmt.Uint](strconv.IntSize),
	"uintptr": unsigned[cfmt.Uintptr](64),
	"pointer": unsigned[cfmt.Pointer](64),
	"float32": func(s string) (cfmt.Arg, error) {
		f, err := strconv.ParseFloat(s, 32)
		return cfmt.Float32(f), err
	},
	"float64": func(s string) (cfmt.Arg, error) {
		f, err := strconv.ParseFloat(s, 64)
		return cfmt.Float64(f), err
	},
	"rune": func(s string) (cfmt.Arg, error) {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return nil, fmt.Errorf("want exactly one character, got %q", s)
		}
		return cfmt.Rune(r), nil
	},
	"string": func(s string) (cfmt.Arg, error) {
		return cfmt.Text(s), nil
	},
	"cstring": func(s string) (cfmt.Arg, error) {
		return cfmt.CString(s), nil
	},
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: argument must be a single-key mapping like {int: 1}", node.Line)
	}
	key, val := node.Content[0], node.Content[1]
	decode, ok := decoders[key.Value]
	if !ok {
		return fmt.Errorf("%w: line %d: %q", ErrUnknownType, key.Line, key.Value)
	}
	if val.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %s argument must be a scalar", val.Line, key.Value)
	}
	arg, err := decode(val.Value)
	if err != nil {
		return fmt.Errorf("line %d: %s argument: %w", val.Line, key.Value, err)
	}
	v.Type = key.Value
	v.Arg = arg
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return map[string]string{v.Type: v.String()}, nil
}

// String renders the argument the way it would appear in a suite file.
func (v Value) String() string {
	switch a := v.Arg.(type) {
	case cfmt.Text:
		return string(a)
	case cfmt.CString:
		return string(a)
	case cfmt.Rune:
		return string(rune(a))
	case cfmt.Float32:
		return strconv.FormatFloat(float64(a), 'g', -1, 32)
	case cfmt.Float64:
		return strconv.FormatFloat(float64(a), 'g', -1, 64)
	case cfmt.Pointer:
		return "0x" + strconv.FormatUint(uint64(a), 16)
	default:
		s, err := v.Arg.Format(cfmt.Specifier{Conversion: cfmt.DecInt})
		if err != nil {
			return fmt.Sprint(v.Arg)
		}
		return s
	}
}
