package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 42.5, "$42.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 5250000, "$5,250,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Exactly one thousand", 1000, "$1,000.00"},
		{"Three digits unseparated", 999.99, "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.want {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	if got := NumericCurrency(1234.5); got != "1,234.50" {
		t.Errorf("NumericCurrency(1234.5) = %q, expected %q", got, "1,234.50")
	}
	if got := NumericCurrency(-987654.321); got != "-987,654.32" {
		t.Errorf("NumericCurrency(-987654.321) = %q, expected %q", got, "-987,654.32")
	}
}

func TestSuffixedCurrency(t *testing.T) {
	if got := CurrencyK(2450); got != "$2,450.00K" {
		t.Errorf("CurrencyK(2450) = %q, expected %q", got, "$2,450.00K")
	}
	if got := CurrencyM(153.4); got != "$153.40M" {
		t.Errorf("CurrencyM(153.4) = %q, expected %q", got, "$153.40M")
	}
}

func TestUnitRenderers(t *testing.T) {
	if got := Percent(2.267); got != "2.3%" {
		t.Errorf("Percent(2.267) = %q, expected %q", got, "2.3%")
	}
	if got := Ratio(1.96); got != "2.0x" {
		t.Errorf("Ratio(1.96) = %q, expected %q", got, "2.0x")
	}
	if got := Ratio(0); got != "0.0x" {
		t.Errorf("Ratio(0) = %q, expected %q", got, "0.0x")
	}
	if got := Months(23.66); got != "23.7 mo" {
		t.Errorf("Months(23.66) = %q, expected %q", got, "23.7 mo")
	}
}
