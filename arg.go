package cfmt

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// Arg is a value that can be consumed by a conversion specifier.
type Arg interface {
	// Format renders the value under spec. Width and precision are
	// always literal by the time Format is called.
	Format(spec Specifier) (string, error)
	// Int returns the value as a C int for '*' widths and precisions.
	Int() (int, bool)
}

// Integer arguments. Signed types print their native-width bit pattern
// under %o, %x and %X.
type (
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Int     int
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Uint    uint
	Uintptr uintptr
)

// Floating point arguments. Float32 widens to float64 before rendering.
type (
	Float32 float32
	Float64 float64
)

// Rune is a Unicode scalar value rendered by %c.
type Rune rune

// Text is a string argument for %s and %q.
type Text string

// CString is a NUL-terminated byte string. Bytes after the first NUL are
// ignored; the rest must be valid UTF-8.
type CString []byte

// Pointer is a memory address rendered by %p.
type Pointer uintptr

func signedInt(v int64) (int, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func unsignedInt(v uint64) (int, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// Int8 is C's char: %c renders it as an ASCII byte.
func (v Int8) Format(spec Specifier) (string, error) {
	if spec.Conversion == Char {
		return formatASCII(byte(v), spec)
	}
	return formatSigned(int64(v), uint64(uint8(v)), spec)
}

func (v Int8) Int() (int, bool) { return int(v), true }

func (v Int16) Format(spec Specifier) (string, error) {
	return formatSigned(int64(v), uint64(uint16(v)), spec)
}

func (v Int16) Int() (int, bool) { return int(v), true }

// Int32 doubles as Go's rune, so %c accepts it when it is a valid scalar
// value.
func (v Int32) Format(spec Specifier) (string, error) {
	if spec.Conversion == Char {
		return formatScalar(uint64(uint32(v)), v < 0, spec)
	}
	return formatSigned(int64(v), uint64(uint32(v)), spec)
}

func (v Int32) Int() (int, bool) { return int(v), true }

func (v Int64) Format(spec Specifier) (string, error) {
	return formatSigned(int64(v), uint64(v), spec)
}

func (v Int64) Int() (int, bool) { return signedInt(int64(v)) }

func (v Int) Format(spec Specifier) (string, error) {
	return formatSigned(int64(v), uint64(uint(v)), spec)
}

func (v Int) Int() (int, bool) { return signedInt(int64(v)) }

// Uint8 is a raw byte: %c accepts ASCII only.
func (v Uint8) Format(spec Specifier) (string, error) {
	if spec.Conversion == Char {
		return formatASCII(byte(v), spec)
	}
	return formatUnsigned(uint64(v), spec)
}

func (v Uint8) Int() (int, bool) { return int(v), true }

// Uint16 is a UTF-16 code unit under %c. Lone surrogates are rejected.
func (v Uint16) Format(spec Specifier) (string, error) {
	if spec.Conversion == Char {
		if utf16.IsSurrogate(rune(v)) {
			return "", fmt.Errorf("%w: code unit %#04x is a surrogate", ErrWrongType, uint16(v))
		}
		return formatRune(rune(v), spec)
	}
	return formatUnsigned(uint64(v), spec)
}

func (v Uint16) Int() (int, bool) { return int(v), true }

func (v Uint32) Format(spec Specifier) (string, error) {
	if spec.Conversion == Char {
		return formatScalar(uint64(v), false, spec)
	}
	return formatUnsigned(uint64(v), spec)
}

func (v Uint32) Int() (int, bool) { return unsignedInt(uint64(v)) }

func (v Uint64) Format(spec Specifier) (string, error) { return formatUnsigned(uint64(v), spec) }

func (v Uint64) Int() (int, bool) { return unsignedInt(uint64(v)) }

func (v Uint) Format(spec Specifier) (string, error) { return formatUnsigned(uint64(v), spec) }

func (v Uint) Int() (int, bool) { return unsignedInt(uint64(v)) }

func (v Uintptr) Format(spec Specifier) (string, error) { return formatUnsigned(uint64(v), spec) }

func (v Uintptr) Int() (int, bool) { return unsignedInt(uint64(v)) }

func (v Float32) Format(spec Specifier) (string, error) { return formatFloat(float64(v), spec) }

func (Float32) Int() (int, bool) { return 0, false }

func (v Float64) Format(spec Specifier) (string, error) { return formatFloat(float64(v), spec) }

func (Float64) Int() (int, bool) { return 0, false }

func (v Rune) Format(spec Specifier) (string, error) {
	if !utf8.ValidRune(rune(v)) {
		return "", fmt.Errorf("%w: %U is not a scalar value", ErrWrongType, rune(v))
	}
	return formatRune(rune(v), spec)
}

func (Rune) Int() (int, bool) { return 0, false }

func (v Text) Format(spec Specifier) (string, error) { return formatString(string(v), spec) }

func (Text) Int() (int, bool) { return 0, false }

func (v CString) Format(spec Specifier) (string, error) {
	b := []byte(v)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: C string is not valid UTF-8", ErrWrongType)
	}
	return formatString(string(b), spec)
}

func (CString) Int() (int, bool) { return 0, false }

func (v Pointer) Format(spec Specifier) (string, error) { return formatUnsigned(uint64(v), spec) }

func (Pointer) Int() (int, bool) { return 0, false }

func formatScalar(v uint64, negative bool, spec Specifier) (string, error) {
	if negative || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return "", fmt.Errorf("%w: %#x is not a scalar value", ErrWrongType, v)
	}
	return formatRune(rune(v), spec)
}

// Of converts a native Go value to an Arg. Values that already implement
// Arg are returned unchanged.
func Of(v any) (Arg, error) {
	switch x := v.(type) {
	case Arg:
		return x, nil
	case int8:
		return Int8(x), nil
	case int16:
		return Int16(x), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case int:
		return Int(x), nil
	case uint8:
		return Uint8(x), nil
	case uint16:
		return Uint16(x), nil
	case uint32:
		return Uint32(x), nil
	case uint64:
		return Uint64(x), nil
	case uint:
		return Uint(x), nil
	case uintptr:
		return Uintptr(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case string:
		return Text(x), nil
	case []byte:
		return CString(x), nil
	case unsafe.Pointer:
		return Pointer(uintptr(x)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported argument type %T", ErrWrongType, v)
	}
}

// Args converts each value with [Of].
func Args(values ...any) ([]Arg, error) {
	args := make([]Arg, len(values))
	for i, v := range values {
		a, err := Of(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}
