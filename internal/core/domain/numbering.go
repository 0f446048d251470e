package domain

import (
	"fmt"
	"strings"
)

// Document number prefixes.
const (
	PrefixQuote      = "DEV"
	PrefixInvoice    = "FAC"
	PrefixCreditNote = "AVR"
)

// FormatNumber builds a number such as DEV-2024-007.
func FormatNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// DeriveNumber swaps the first occurrence of from for to in number.
// When from does not occur, "-" + to is appended instead.
func DeriveNumber(number, from, to string) string {
	if strings.Contains(number, from) {
		return strings.Replace(number, from, to, 1)
	}
	return number + "-" + to
}

// ParseNumber extracts prefix, year and sequence from a number produced by FormatNumber.
func ParseNumber(number string) (prefix string, year int, seq int64, ok bool) {
	if _, err := fmt.Sscanf(strings.ReplaceAll(number, "-", " "), "%s %d %d", &prefix, &year, &seq); err != nil {
		return "", 0, 0, false
	}
	return prefix, year, seq, true
}
