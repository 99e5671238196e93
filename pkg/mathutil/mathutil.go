// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// Guard substitutes 1 for a zero denominator. Every formula in the metrics
// engine whose denominator can legitimately be zero (empty funnel stage, zero
// customers, zero spend) divides by Guard(d) so the engine never produces
// NaN or Infinity. The result is defined-but-possibly-misleading (cost per MQL
// with zero MQLs becomes total spend), which downstream display code relies on.
func Guard(denominator float64) float64 {
	if denominator == 0 {
		return 1
	}
	return denominator
}

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
