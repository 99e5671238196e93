// Package format renders metric values as display strings.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// CurrencyK renders a $K-denominated amount (e.g., 2450 -> "$2,450.00K").
func CurrencyK(amount float64) string {
	return Currency(amount) + "K"
}

// CurrencyM renders a $M-denominated amount (e.g., 153.4 -> "$153.40M").
func CurrencyM(amount float64) string {
	return Currency(amount) + "M"
}

// Percent renders a 0-100 scaled percentage with one decimal (e.g., "2.3%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Ratio renders a dimensionless ratio with one decimal and an "x" suffix (e.g., "3.4x").
func Ratio(value float64) string {
	return fmt.Sprintf("%.1fx", value)
}

// Months renders a duration in months with one decimal (e.g., "14.2 mo").
func Months(value float64) string {
	return fmt.Sprintf("%.1f mo", value)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
