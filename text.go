package cfmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

func formatRune(r rune, spec Specifier) (string, error) {
	if spec.Conversion != Char {
		return "", fmt.Errorf("%w: %%%s on a character", ErrWrongType, spec.Conversion)
	}
	return padText(string(r), spec), nil
}

// formatASCII renders a raw byte as a character. Bytes outside ASCII are
// fragments of multi-byte sequences and are rejected.
func formatASCII(b byte, spec Specifier) (string, error) {
	if b >= utf8.RuneSelf {
		return "", fmt.Errorf("%w: byte %#x is not ASCII", ErrWrongType, b)
	}
	return formatRune(rune(b), spec)
}

func formatString(s string, spec Specifier) (string, error) {
	switch spec.Conversion {
	case String:
		return padText(truncate(s, spec.Precision.Value), spec), nil
	case QuotedString:
		return quote(s), nil
	default:
		return "", fmt.Errorf("%w: %%%s on a string", ErrWrongType, spec.Conversion)
	}
}

// truncate cuts s to at most n bytes without splitting an encoded character.
func truncate(s string, n int) string {
	if n >= len(s) {
		return s
	}
	i := 0
	for i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		if i+size > n {
			break
		}
		i += size
	}
	return s[:i]
}

// quote wraps s in double quotes, escaping quotes, backslashes and control
// bytes. Control bytes without a short escape become a backslash and their
// decimal value; the value is widened to three digits when a digit follows
// so the escape cannot swallow it.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"':
			sb.WriteString(`\"`)
		case b == '\\':
			sb.WriteString(`\\`)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\r':
			sb.WriteString(`\r`)
		case b < 0x20 || b == 0x7f:
			sb.WriteByte('\\')
			d := strconv.Itoa(int(b))
			if i+1 < len(s) && isDigit(s[i+1]) {
				d = strings.Repeat("0", 3-len(d)) + d
			}
			sb.WriteString(d)
		default:
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote reverses the escaping applied by the %q conversion.
func Unquote(q string) (string, error) {
	if len(q) < 2 || q[0] != '"' || q[len(q)-1] != '"' {
		return "", fmt.Errorf("%w: quoted string must be enclosed in double quotes", ErrParse)
	}
	body := q[1 : len(q)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("%w: dangling backslash", ErrParse)
		}
		switch c := body[i]; {
		case c == 'n':
			sb.WriteByte('\n')
		case c == 'r':
			sb.WriteByte('\r')
		case c == '"' || c == '\\':
			sb.WriteByte(c)
		case isDigit(c):
			j := i
			for j < len(body) && j < i+3 && isDigit(body[j]) {
				j++
			}
			n, _ := strconv.Atoi(body[i:j])
			if n > 0xff {
				return "", fmt.Errorf("%w: escape \\%s out of range", ErrParse, body[i:j])
			}
			sb.WriteByte(byte(n))
			i = j - 1
		default:
			return "", fmt.Errorf("%w: unknown escape \\%c", ErrParse, c)
		}
	}
	return sb.String(), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
