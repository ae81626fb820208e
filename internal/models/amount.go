package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a quantity or price from dirty spreadsheet text.
// Thousands-separator commas are stripped before parsing ("1,250" -> 1250).
// Any value that still fails to parse yields decimal.Zero; lenient parsing is
// deliberate for real-world ERP exports and callers must not treat zero as an
// error signal.
func ParseAmount(text string) decimal.Decimal {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatAmount renders an amount with exactly two decimal places, the format
// the output template requires for quantities and unit prices.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
