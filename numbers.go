package compactjson

import "strings"

// hasExponent reports whether a numeric token uses exponent notation. Such
// tokens never take part in decimal-point alignment.
func hasExponent(token string) bool {
	return strings.ContainsAny(token, "eE")
}

// alignDecimal prepares a numeric token for a column with fracDigits decimal
// digits. Fractions are zero-padded on the right so every cell has the same
// precision; tokens with no fraction keep their textual form and get
// trailing spaces instead, so the decimal points still line up.
func alignDecimal(token string, fracDigits int) string {
	if fracDigits == 0 {
		return token
	}
	whole, frac, found := strings.Cut(token, ".")
	if !found {
		return whole + spaces(fracDigits+1)
	}
	if pad := fracDigits - len(frac); pad > 0 {
		return whole + "." + frac + strings.Repeat("0", pad)
	}
	return token
}

// justifyParallelNumbers right-aligns a group of sibling numbers to matching
// width and precision. Groups holding anything other than numbers, or fewer
// than two elements, are left alone.
func (f *formatter) justifyParallelNumbers(children []*formattedNode) {
	if len(children) < 2 || !f.opts.JustifyNumbers {
		return
	}

	cs := f.newColumnStats()
	for _, child := range children {
		cs.update(child, 0)
	}
	if cs.class != classInt && cs.class != classFloat {
		return
	}

	for _, child := range children {
		child.value = cs.formatCell(child.value, child.valueLength)
		child.valueLength = cs.width()
	}
}
