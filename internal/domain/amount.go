package domain

import "github.com/shopspring/decimal"

// Precision is the externally visible number of fractional digits for all
// amounts. Inputs may carry more precision; exported values are rounded
// to this.
const Precision = 4

// ParseAmount parses a decimal amount string exactly, without a float
// round-trip.
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// FormatAmount renders an amount with exactly Precision fractional
// digits, keeping trailing zeros.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(Precision)
}
