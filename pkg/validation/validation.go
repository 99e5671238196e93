// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// CheckPercent returns a warning when a percentage field is outside 0-100,
// or "" when it is fine.
func CheckPercent(name string, value float64) string {
	if value < 0 || value > constants.PercentageMultiplier {
		return fmt.Sprintf("%s is %.2f, expected a 0-100 percentage", name, value)
	}
	return ""
}

// CheckNonNegative returns a warning when a count or spend field is negative,
// or "" when it is fine.
func CheckNonNegative(name string, value float64) string {
	if value < 0 {
		return fmt.Sprintf("%s is negative (%.2f)", name, value)
	}
	return ""
}

// CheckOrdering returns a warning when a funnel stage exceeds the stage it is
// drawn from (e.g. more MQLs than leads), or "" when the ordering holds.
// Stages with a zero upper bound are skipped since the field may simply be unused.
func CheckOrdering(lowerName string, lower float64, upperName string, upper float64) string {
	if upper == 0 {
		return ""
	}
	if lower > upper {
		return fmt.Sprintf("%s (%.0f) exceeds %s (%.0f)", lowerName, lower, upperName, upper)
	}
	return ""
}
