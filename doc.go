// Package cfmt implements C's printf-family string formatting in pure Go.
//
// Output matches a C library's sprintf for the supported conversions, so
// formatted text can be produced where no C library is available and where
// Go's own fmt verbs would render differently.
//
// The central entry points are [Sprintf], which accepts native Go values,
// and [Vsprintf], which accepts an explicit [Arg] list:
//
//	s, err := cfmt.Sprintf("%-8s|%#06x|%+.2f", "id", 16, 3.14159)
//	// "id      |0x0010|+3.14"
//
// # Templates
//
// [Parse] compiles a format string into a [Template] of verbatim runs and
// conversion specifiers. A template can be rendered any number of times:
//
//	t := cfmt.MustParse("%5.1f%%\n")
//	s, err := t.Render(cfmt.Float64(99.44))
//
// # Conversions
//
// Supported directives follow C's grammar: flags (#, 0, -, space, +), a
// field width, a precision, an optional length modifier, and one of
//
//   - d i u — decimal integer
//   - o x X — octal and hexadecimal integer
//   - e E f F g G — scientific, fixed and compact floating point
//   - a A — hexadecimal floating point
//   - c — character
//   - s — string, precision limits the byte count
//   - q — double-quoted string with control characters escaped
//   - p — pointer, rendered like %#x
//   - %% — a literal percent sign
//
// Width and precision may be '*', which consumes an int argument before the
// value. Length modifiers (hh, h, l, ll, q, L, j, z, Z, t) are accepted and
// ignored: the argument's own type decides how it renders.
//
// # Arguments
//
// Each argument is an [Arg]. The package provides one type per C argument
// kind ([Int8] through [Uint64], [Float32], [Float64], [Rune], [Text],
// [CString], [Pointer]); [Of] converts native Go values to them.
//
// # Differences from C
//
//   - Floating point values that sit exactly halfway round away from zero;
//     C rounds them to even. Everything else matches C digit for digit.
//   - %s precision never splits an encoded UTF-8 character.
//   - %q is an extension; %n and positional arguments are not supported.
//
// # Errors
//
// Formatting either succeeds completely or returns one of the sentinel
// errors, wrapped with context:
//
//   - [ErrParse] — malformed format string
//   - [ErrWrongType] — an argument cannot render under its conversion
//   - [ErrNotEnoughArgs] — the template consumes more arguments than given
//   - [ErrTooManyArgs] — arguments remain after rendering
//   - [ErrUnknown] — an internal inconsistency
package cfmt
