package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
	hundred      = decimal.NewFromInt(100)
)

// Compound returns (1 + rate)^periods using exact repeated multiplication.
// Non-positive periods yield 1.
func Compound(rate decimal.Decimal, periods int) decimal.Decimal {
	factor := one.Add(rate)
	result := one
	for i := 0; i < periods; i++ {
		result = result.Mul(factor)
	}
	return result
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsInYear)
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// FloorZero clamps negative amounts to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	return Max(d, decimal.Zero)
}

// Percent returns part/whole*100, or zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Grouped renders an amount rounded to cents with thousands separators,
// dropping a zero fractional part: 85000 -> "85,000", 1234.5 -> "1,234.50".
func Grouped(d decimal.Decimal) string {
	rounded := d.Round(2)
	whole := rounded.Truncate(0)
	out := humanize.BigComma(whole.BigInt())
	if rounded.Equal(whole) {
		return out
	}
	frac := rounded.Sub(whole).Abs().StringFixed(2)
	out += strings.TrimPrefix(frac, "0")
	if whole.IsZero() && rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatCurrency prefixes a grouped amount with a currency symbol.
func FormatCurrency(symbol string, d decimal.Decimal) string {
	if d.Round(2).IsNegative() {
		return "-" + symbol + strings.TrimPrefix(Grouped(d), "-")
	}
	return symbol + Grouped(d)
}
