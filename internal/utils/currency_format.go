package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatEuro renders an amount the French way with two decimals.
// Example: 1234.5 returns "1 234,50 €"
func FormatEuro(amount decimal.Decimal) string {
	return FormatFrenchNumber(amount, 2) + " €"
}

// FormatFrenchNumber groups thousands with spaces and uses a decimal comma.
func FormatFrenchNumber(amount decimal.Decimal, places int32) string {
	s := amount.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatQuantity drops trailing zeros: 2 rather than 2.00, 1,5 rather than 1.50.
func FormatQuantity(q decimal.Decimal) string {
	return strings.Replace(q.String(), ".", ",", 1)
}

// FormatFrenchDate renders t as DD/MM/YYYY.
func FormatFrenchDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var frenchWeekdays = [...]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}
var frenchMonths = [...]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."}

// FormatShortFrenchDay renders t as e.g. "lun. 10 juin", used for attendance columns.
func FormatShortFrenchDay(t time.Time) string {
	return frenchWeekdays[t.Weekday()] + " " + t.Format("2") + " " + frenchMonths[t.Month()-1]
}
