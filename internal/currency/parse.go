package currency

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a free-form decimal string into a float64. The string
// may use either "," or "." as the decimal separator: the first comma is
// rewritten to a dot before parsing. Empty input and anything that does not
// read as a finite number parse to 0; this function never fails.
//
// Parsing stops at the first character that cannot extend a plain decimal
// number, so a string carrying both separators ("1,234.56") truncates at the
// second one and yields 1.234. Callers must not feed thousands-separated
// strings here; this is for single-separator decimal input only.
func ParseAmount(input string) float64 {
	s := strings.Replace(strings.TrimSpace(input), ",", ".", 1)
	s = numericPrefix(s)
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// numericPrefix returns the longest prefix of s that reads as a plain
// decimal number: an optional sign, digits, and at most one dot. An empty
// string comes back when no digit is reached.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	sawDigit := false
	sawDot := false
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			sawDigit = true
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			continue
		}
		break
	}
	if !sawDigit {
		return ""
	}
	return s[:i]
}

// ParseDisplayValue converts a locale-formatted display string back into a
// canonical float64. Thousands separators are stripped, the locale decimal
// separator becomes a dot, and any residual character that is not a digit,
// dot, or leading minus is dropped. Returns 0 when nothing parseable remains.
func ParseDisplayValue(display string, code Code) float64 {
	rule := RuleFor(code)
	s := strings.ReplaceAll(display, rule.ThousandsSeparator, "")
	s = strings.ReplaceAll(s, rule.DecimalSeparator, ".")

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || (c == '-' && b.Len() == 0) {
			b.WriteByte(c)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
