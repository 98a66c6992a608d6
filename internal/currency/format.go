package currency

import (
	"math"
	"strconv"
	"strings"
)

// SanitizeInput reduces raw keyboard input to a valid partial number in the
// currency's notation. Only digits and the first occurrence of the locale
// decimal separator survive; after that separator at most 2 more digits are
// admitted and any later separator occurrence is dropped. Running this on
// every keystroke keeps the field readable while the user is still typing.
func SanitizeInput(raw string, code Code) string {
	sep := RuleFor(code).DecimalSeparator[0]

	var b strings.Builder
	sawSep := false
	decimals := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			if sawSep {
				if decimals >= 2 {
					continue
				}
				decimals++
			}
			b.WriteByte(c)
		case c == sep && !sawSep:
			sawSep = true
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatValue renders a canonical float64 in the currency's notation: two
// decimal places, thousands separators every three integer digits, and a
// leading "-" for negative values. An exact 0 formats as the empty string so
// an untouched input field shows as empty rather than "0,00".
func FormatValue(value float64, code Code) string {
	if value == 0 {
		return ""
	}
	rule := RuleFor(code)

	s := strconv.FormatFloat(math.Abs(value), 'f', 2, 64)
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	formatted := groupThousands(intPart, rule.ThousandsSeparator) + rule.DecimalSeparator + fracPart
	if value < 0 {
		return "-" + formatted
	}
	return formatted
}

// groupThousands inserts sep every 3 digits from the right
func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
