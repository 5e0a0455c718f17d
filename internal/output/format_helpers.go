package output

import (
	"strconv"

	dec "github.com/lifepath/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as dollars with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return dec.FormatCurrency("$", amount) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.07) as a percentage ("7.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// currency returns a formatter for the given symbol, dollars when empty.
func currency(symbol string) func(decimal.Decimal) string {
	symbol = Options{CurrencySymbol: symbol}.symbol()
	return func(d decimal.Decimal) string { return dec.FormatCurrency(symbol, d) }
}

var decimalHundred = decimal.NewFromInt(100)

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// optionalInt renders a nil pointer as an empty cell.
func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// fixed renders an amount with two decimals and no grouping, for machine-readable output.
func fixed(d decimal.Decimal) string { return d.StringFixed(2) }
