package cfmt

import "strings"

// layout assembles sign, prefix and body into a field of the specifier's
// width. Left adjustment wins over zero padding; zero padding goes between
// the prefix and the body and only applies when zeroOK is set.
func layout(sign, prefix, body string, spec Specifier, zeroOK bool) string {
	pad := spec.Width.Value - len(sign) - len(prefix) - len(body)
	if pad <= 0 {
		return sign + prefix + body
	}
	switch {
	case spec.LeftAdjust:
		return sign + prefix + body + strings.Repeat(" ", pad)
	case spec.ZeroPad && zeroOK:
		return sign + prefix + strings.Repeat("0", pad) + body
	default:
		return strings.Repeat(" ", pad) + sign + prefix + body
	}
}

// padText pads s with spaces to the specifier's width. Width is measured in
// bytes of encoded text.
func padText(s string, spec Specifier) string {
	return layout("", "", s, spec, false)
}
