// Package price parses free-form, locale-ambiguous price display strings
// into comparable numeric values.
package price

import (
	"strconv"
	"strings"
)

// Parse converts a price display string like "$1,299.99", "£150" or
// "1.299,95 EUR" into a float. The second return value is false when the
// string is empty or contains no parseable numeral.
//
// Separator disambiguation compares the last comma against the last dot:
// a comma after the dot means European style (dot = thousands separator,
// comma = decimal separator); otherwise commas are thousands separators.
//
// Parse is pure and runs on every filter/sort pass, so it stays on a single
// byte walk with at most one allocation for the cleaned string.
func Parse(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.', c == ',', c == '-':
			b.WriteByte(c)
		default:
			// Currency symbols, codes (USD, EUR), whitespace: dropped.
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	lastComma := strings.LastIndexByte(cleaned, ',')
	lastDot := strings.LastIndexByte(cleaned, '.')
	if lastComma > lastDot {
		// European style: "1.299,95" -> "1299.95"
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
