package compactjson

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// stringWidth measures the on-screen column width of s. Without East Asian
// semantics it is the codepoint count; with them, runes classified as wide or
// fullwidth count 2 columns and every other rune counts 1. Classification is
// delegated to go-runewidth; anything it does not recognize as wide falls
// back to a single column, so measurement never fails.
func stringWidth(s string, eastAsian bool) int {
	if isASCII(s) {
		return len(s)
	}
	if !eastAsian {
		return utf8.RuneCountInString(s)
	}
	w := 0
	for _, r := range s {
		if runewidth.RuneWidth(r) == 2 {
			w += 2
		} else {
			w++
		}
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// padRight pads value with trailing spaces out to target columns. width is
// the display width of value, which may be smaller than len(value).
func padRight(value string, width, target int) string {
	if target <= width {
		return value
	}
	return value + spaces(target-width)
}

// padLeft pads value with leading spaces out to target columns.
func padLeft(value string, width, target int) string {
	if target <= width {
		return value
	}
	return spaces(target-width) + value
}

func spaces(n int) string {
	const blanks = "                                                                "
	if n <= 0 {
		return ""
	}
	if n <= len(blanks) {
		return blanks[:n]
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
