package cfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// formatUnsigned renders v under one of the integer conversions.
func formatUnsigned(v uint64, spec Specifier) (string, error) {
	switch spec.Conversion {
	case DecInt, OctInt, HexLower, HexUpper:
		return renderInt("", v, spec), nil
	default:
		return "", fmt.Errorf("%w: %%%s on an integer", ErrWrongType, spec.Conversion)
	}
}

// formatSigned renders v. Octal and hex conversions print bits, the
// two's-complement pattern of v at its native width, as an unsigned value.
func formatSigned(v int64, bits uint64, spec Specifier) (string, error) {
	switch spec.Conversion {
	case DecInt:
		mag := uint64(v)
		if v < 0 {
			mag = -mag
		}
		return renderInt(signPrefix(v < 0, spec), mag, spec), nil
	case OctInt, HexLower, HexUpper:
		return renderInt("", bits, spec), nil
	default:
		return "", fmt.Errorf("%w: %%%s on an integer", ErrWrongType, spec.Conversion)
	}
}

func signPrefix(negative bool, spec Specifier) string {
	switch {
	case negative:
		return "-"
	case spec.ForceSign:
		return "+"
	case spec.SpaceSign:
		return " "
	default:
		return ""
	}
}

func renderInt(sign string, mag uint64, spec Specifier) string {
	base := 10
	switch spec.Conversion {
	case OctInt:
		base = 8
	case HexLower, HexUpper:
		base = 16
	}

	digits := strconv.FormatUint(mag, base)
	if spec.Conversion == HexUpper {
		digits = strings.ToUpper(digits)
	}
	if spec.HasPrecision {
		p := spec.Precision.Value
		if p == 0 && mag == 0 {
			digits = ""
		} else if len(digits) < p {
			digits = strings.Repeat("0", p-len(digits)) + digits
		}
	}

	var prefix string
	if spec.AltForm {
		switch spec.Conversion {
		case OctInt:
			if !strings.HasPrefix(digits, "0") {
				digits = "0" + digits
			}
		case HexLower:
			if mag != 0 {
				prefix = "0x"
			}
		case HexUpper:
			if mag != 0 {
				prefix = "0X"
			}
		}
	}

	return layout(sign, prefix, digits, spec, !spec.HasPrecision)
}
