// Package money formats decimal amounts the way the venue's clients read
// them (es-AR grouping: thousands '.', decimals ',').
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount with two decimals and its currency code,
// e.g. Format(d, "ARS") -> "ARS 1.234,50".
func Format(amount decimal.Decimal, currency string) string {
	s := group(amount)
	if currency == "" {
		return s
	}
	return currency + " " + s
}

// group renders amount with two decimals, '.' thousands separators and a
// ',' decimal separator.
func group(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
