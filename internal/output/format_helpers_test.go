package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"1234.567": "$1,234.57",
		"85000":    "$85,000",
		"-5880":    "-$5,880",
		"0":        "$0",
	}
	for in, want := range cases {
		if got := FormatCurrency(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	if got, want := FormatPercentage(v), "12.35%"; got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
	if got, want := FormatRate(decimal.RequireFromString("0.07")), "7.00%"; got != want {
		t.Errorf("FormatRate = %q, want %q", got, want)
	}
}

func TestCellHelpers(t *testing.T) {
	seven := 7
	if optionalInt(nil) != "" || optionalInt(&seven) != "7" {
		t.Fatalf("optionalInt mismatch")
	}
	if boolToString(true) != "true" || intToString(-3) != "-3" {
		t.Fatalf("string helpers mismatch")
	}
	if got := currency("")(decimal.NewFromInt(5)); got != "$5" {
		t.Fatalf("currency default symbol = %q", got)
	}
}
