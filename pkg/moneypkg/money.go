// Package moneypkg provides common money parsing and display functionality.
package moneypkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts free-form user input into a decimal amount.
// Surrounding whitespace is tolerated; anything else must be a plain decimal number.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Format renders an amount with the currency symbol prefix and exactly two decimals.
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
