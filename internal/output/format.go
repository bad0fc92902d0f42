package output

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a monetary amount with two fractional digits
// and the PLN suffix.
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " PLN"
}

// FormatPercent renders a percentage with one fractional digit.
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(1) + "%"
}
