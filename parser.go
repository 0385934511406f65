package cfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Conversion selects how a conversion specifier renders its argument.
type Conversion int

const (
	DecInt        Conversion = iota // d, i, u
	OctInt                          // o
	HexLower                        // x, p
	HexUpper                        // X
	SciLower                        // e
	SciUpper                        // E
	FixedLower                      // f
	FixedUpper                      // F
	CompactLower                    // g
	CompactUpper                    // G
	HexFloatLower                   // a
	HexFloatUpper                   // A
	Char                            // c, C
	String                          // s, S
	QuotedString                    // q
	Percent                         // %
)

var conversionNames = map[Conversion]string{
	DecInt:        "d",
	OctInt:        "o",
	HexLower:      "x",
	HexUpper:      "X",
	SciLower:      "e",
	SciUpper:      "E",
	FixedLower:    "f",
	FixedUpper:    "F",
	CompactLower:  "g",
	CompactUpper:  "G",
	HexFloatLower: "a",
	HexFloatUpper: "A",
	Char:          "c",
	String:        "s",
	QuotedString:  "q",
	Percent:       "%",
}

// String returns the canonical conversion character.
func (c Conversion) String() string {
	if s, ok := conversionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Conversion(%d)", int(c))
}

// Upper reports whether the conversion renders letters in upper case.
func (c Conversion) Upper() bool {
	switch c {
	case HexUpper, SciUpper, FixedUpper, CompactUpper, HexFloatUpper:
		return true
	default:
		return false
	}
}

// Param is a field width or precision: either a literal value or a marker
// meaning the value comes from the next argument.
type Param struct {
	Value        int
	FromArgument bool
}

// Literal returns a Param holding n.
func Literal(n int) Param { return Param{Value: n} }

// FromArgument is the Param produced by '*'.
var FromArgument = Param{FromArgument: true}

// Specifier is one parsed %-directive.
type Specifier struct {
	AltForm    bool // #
	ZeroPad    bool // 0
	LeftAdjust bool // -
	SpaceSign  bool // ' '
	ForceSign  bool // +
	Width      Param
	Precision  Param
	// HasPrecision is set when the directive contained a '.'.
	HasPrecision bool
	Conversion   Conversion
}

// ElementKind distinguishes literal text from conversions.
type ElementKind int

const (
	Verbatim ElementKind = iota
	Directive
)

// Element is a run of literal text or a single conversion specifier.
// Text always refers to the slice of the template the element came from.
type Element struct {
	Kind ElementKind
	Text string
	Spec Specifier
}

// Template is a parsed format string. It can be rendered any number of
// times with different arguments.
type Template []Element

// lengthModifiers are accepted and ignored; the argument's own type decides
// its width. Two-letter forms come first so "hh" is not read as "h".
var lengthModifiers = []string{"hh", "h", "ll", "l", "q", "L", "j", "z", "Z", "t"}

// Parse splits template into verbatim runs and conversion specifiers.
func Parse(template string) (Template, error) {
	var out Template
	rem := template
	for rem != "" {
		i := strings.IndexByte(rem, '%')
		if i < 0 {
			out = append(out, Element{Kind: Verbatim, Text: rem})
			break
		}
		if i > 0 {
			out = append(out, Element{Kind: Verbatim, Text: rem[:i]})
		}
		offset := len(template) - len(rem) + i
		spec, rest, err := parseSpecifier(rem[i+1:])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d: %s", ErrParse, offset, err)
		}
		n := len(rem) - i - len(rest)
		out = append(out, Element{Kind: Directive, Text: rem[i : i+n], Spec: spec})
		rem = rest
	}
	return out, nil
}

// MustParse is like Parse but panics on error. It is meant for templates
// known at compile time.
func MustParse(template string) Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Conversions returns only the conversion elements of t, in order.
func (t Template) Conversions() []Specifier {
	var specs []Specifier
	for _, e := range t {
		if e.Kind == Directive {
			specs = append(specs, e.Spec)
		}
	}
	return specs
}

// parseSpecifier parses the text following a '%' and returns the specifier
// plus whatever follows the conversion character.
func parseSpecifier(s string) (Specifier, string, error) {
	var spec Specifier

flags:
	for s != "" {
		switch s[0] {
		case '#':
			spec.AltForm = true
		case '0':
			spec.ZeroPad = true
		case '-':
			spec.LeftAdjust = true
		case ' ':
			spec.SpaceSign = true
		case '+':
			spec.ForceSign = true
		default:
			break flags
		}
		s = s[1:]
	}

	spec.Width, s = parseParam(s)

	if s != "" && s[0] == '.' {
		spec.HasPrecision = true
		spec.Precision, s = parseParam(s[1:])
	}

	for _, m := range lengthModifiers {
		if strings.HasPrefix(s, m) {
			s = s[len(m):]
			break
		}
	}

	if s == "" {
		return spec, "", errors.New("missing conversion character")
	}
	switch s[0] {
	case 'd', 'i', 'u':
		spec.Conversion = DecInt
	case 'o':
		spec.Conversion = OctInt
	case 'x':
		spec.Conversion = HexLower
	case 'X':
		spec.Conversion = HexUpper
	case 'e':
		spec.Conversion = SciLower
	case 'E':
		spec.Conversion = SciUpper
	case 'f':
		spec.Conversion = FixedLower
	case 'F':
		spec.Conversion = FixedUpper
	case 'g':
		spec.Conversion = CompactLower
	case 'G':
		spec.Conversion = CompactUpper
	case 'a':
		spec.Conversion = HexFloatLower
	case 'A':
		spec.Conversion = HexFloatUpper
	case 'c', 'C':
		spec.Conversion = Char
	case 's', 'S':
		spec.Conversion = String
	case 'q':
		spec.Conversion = QuotedString
	case 'p':
		spec.AltForm = true
		spec.Conversion = HexLower
	case '%':
		spec.Conversion = Percent
	default:
		return spec, "", fmt.Errorf("unknown conversion character %q", s[0])
	}

	if !spec.HasPrecision {
		spec.Precision = Literal(defaultPrecision(spec.Conversion))
	}
	return spec, s[1:], nil
}

// parseParam reads a width or precision: '*' or a run of decimal digits.
// An empty run yields zero.
func parseParam(s string) (Param, string) {
	if s != "" && s[0] == '*' {
		return FromArgument, s[1:]
	}
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n <= (math.MaxInt32-9)/10 {
			n = n*10 + int(s[i]-'0')
		} else {
			n = math.MaxInt32
		}
		i++
	}
	return Literal(n), s[i:]
}

func defaultPrecision(c Conversion) int {
	if c == String {
		return math.MaxInt32
	}
	return 6
}
