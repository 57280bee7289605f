package services

import (
	"fmt"
	"strings"
)

// FormatEUR formats an amount into French euro notation: digits grouped in
// threes with spaces, a comma as decimal separator and a trailing euro sign
// (e.g., 1 234 567,89 €). The result always includes exactly 2 decimal places.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := applyFrenchGrouping(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// applyFrenchGrouping inserts a space every 3 digits from the right.
func applyFrenchGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + " " + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + " " + result
	}

	return result
}
