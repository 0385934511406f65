package cfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// hexMantissaDigits is the number of hex digits in a float64 fraction.
const hexMantissaDigits = 13

func formatFloat(x float64, spec Specifier) (string, error) {
	switch spec.Conversion {
	case SciLower, SciUpper, FixedLower, FixedUpper, CompactLower, CompactUpper, HexFloatLower, HexFloatUpper:
	default:
		return "", fmt.Errorf("%w: %%%s on a float", ErrWrongType, spec.Conversion)
	}

	sign := signPrefix(math.Signbit(x), spec)
	upper := spec.Conversion.Upper()

	if math.IsInf(x, 0) || math.IsNaN(x) {
		s := "inf"
		if math.IsNaN(x) {
			s = "nan"
		}
		if upper {
			s = strings.ToUpper(s)
		}
		return layout(sign, "", s, spec, false), nil
	}

	abs := math.Abs(x)
	prec := max(spec.Precision.Value, 0)

	var body string
	switch spec.Conversion {
	case FixedLower, FixedUpper:
		body = newDecimal(abs).fixed(prec, spec.AltForm)
	case SciLower, SciUpper:
		body = newDecimal(abs).scientific(prec, spec.AltForm, upper)
	case CompactLower, CompactUpper:
		body = newDecimal(abs).compact(prec, spec.AltForm, upper)
	default:
		prefix, mant := hexFloat(abs, spec)
		return layout(sign, prefix, mant, spec, true), nil
	}
	return layout(sign, "", body, spec, true), nil
}

// decimal is a non-negative value 0.d[0]d[1]... × 10^dp. Digits carry no
// leading or trailing zeros; an empty d is zero.
type decimal struct {
	d  []byte
	dp int
}

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 767

// newDecimal captures the exact decimal expansion of v.
func newDecimal(v float64) decimal {
	if v == 0 {
		return decimal{}
	}
	s := strconv.FormatFloat(v, 'e', exactDigits, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits := strings.TrimRight(strings.Replace(mant, ".", "", 1), "0")
	return decimal{d: []byte(digits), dp: e + 1}
}

func (d decimal) zero() bool { return len(d.d) == 0 }

// digit returns the i-th significant digit, '0' past either end.
func (d decimal) digit(i int) byte {
	if i < 0 || i >= len(d.d) {
		return '0'
	}
	return d.d[i]
}

// round keeps the first n significant digits, rounding half away from zero.
// A carry out of the leading digit shifts the decimal point.
func (d decimal) round(n int) decimal {
	if n >= len(d.d) {
		return d
	}
	if n < 0 {
		return decimal{}
	}
	up := d.d[n] >= '5'
	out := decimal{d: append([]byte(nil), d.d[:n]...), dp: d.dp}
	if up {
		i := n - 1
		for i >= 0 && out.d[i] == '9' {
			i--
		}
		if i < 0 {
			out.d = []byte{'1'}
			out.dp++
		} else {
			out.d[i]++
			out.d = out.d[:i+1]
		}
	}
	for len(out.d) > 0 && out.d[len(out.d)-1] == '0' {
		out.d = out.d[:len(out.d)-1]
	}
	if out.zero() {
		return decimal{}
	}
	return out
}

// exponent is the power of ten of the leading digit.
func (d decimal) exponent() int {
	if d.zero() {
		return 0
	}
	return d.dp - 1
}

// fixed renders d with prec fractional digits.
func (d decimal) fixed(prec int, alt bool) string {
	d = d.round(d.dp + prec)
	var sb strings.Builder
	if d.dp <= 0 || d.zero() {
		sb.WriteByte('0')
	} else {
		for i := 0; i < d.dp; i++ {
			sb.WriteByte(d.digit(i))
		}
	}
	if prec > 0 || alt {
		sb.WriteByte('.')
	}
	for i := 0; i < prec; i++ {
		sb.WriteByte(d.digit(d.dp + i))
	}
	return sb.String()
}

// scientific renders d as one leading digit, prec fractional digits and a
// signed exponent of at least two digits.
func (d decimal) scientific(prec int, alt, upper bool) string {
	d = d.round(prec + 1)
	var sb strings.Builder
	sb.WriteByte(d.digit(0))
	if prec > 0 || alt {
		sb.WriteByte('.')
	}
	for i := 1; i <= prec; i++ {
		sb.WriteByte(d.digit(i))
	}
	if upper {
		sb.WriteByte('E')
	} else {
		sb.WriteByte('e')
	}
	exp := d.exponent()
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	if exp < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(exp))
	return sb.String()
}

// compact renders d with prec significant digits in whichever of fixed or
// scientific notation C's %g picks. Without alt, trailing fractional zeros
// and a dangling decimal point are removed.
func (d decimal) compact(prec int, alt, upper bool) string {
	if prec == 0 {
		prec = 1
	}
	d = d.round(prec)
	exp := d.exponent()

	var s string
	if exp < -4 || exp >= prec {
		s = d.scientific(prec-1, alt, upper)
	} else {
		s = d.fixed(prec-1-exp, alt)
	}
	if alt {
		return s
	}

	mant, tail := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, tail = s[:i], s[i:]
	}
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	return mant + tail
}

// hexFloat renders abs in C99 %a form, returning the "0x" prefix and the
// mantissa-exponent body separately so zero padding can sit between them.
func hexFloat(abs float64, spec Specifier) (string, string) {
	prefix := "0x"
	upper := spec.Conversion.Upper()
	if upper {
		prefix = "0X"
	}

	var lead, frac uint64
	var exp int
	digits := hexMantissaDigits

	if abs != 0 {
		bits := math.Float64bits(abs)
		biased := int(bits >> 52 & 0x7ff)
		m := bits & (1<<52 - 1)
		if biased == 0 {
			exp = -1022
		} else {
			m |= 1 << 52
			exp = biased - 1023
		}
		if spec.HasPrecision && spec.Precision.Value < hexMantissaDigits {
			digits = max(spec.Precision.Value, 0)
			shift := uint(4 * (hexMantissaDigits - digits))
			m = (m + 1<<(shift-1)) >> shift
		}
		lead = m >> uint(4*digits)
		frac = m & (1<<uint(4*digits) - 1)
	}

	var fracStr string
	if digits > 0 {
		fracStr = strconv.FormatUint(frac, 16)
		fracStr = strings.Repeat("0", digits-len(fracStr)) + fracStr
	}
	switch {
	case !spec.HasPrecision:
		fracStr = strings.TrimRight(fracStr, "0")
	case abs == 0:
		fracStr = strings.Repeat("0", spec.Precision.Value)
	case spec.Precision.Value > hexMantissaDigits:
		fracStr += strings.Repeat("0", spec.Precision.Value-hexMantissaDigits)
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(lead, 16))
	if fracStr != "" || spec.AltForm {
		sb.WriteByte('.')
		sb.WriteString(fracStr)
	}
	sb.WriteByte('p')
	if exp >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(strconv.Itoa(exp))

	body := sb.String()
	if upper {
		body = strings.ToUpper(body)
	}
	return prefix, body
}
