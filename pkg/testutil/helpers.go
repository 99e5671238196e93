// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/saas-metrics/internal/metrics"
)

// FindKeyMetric finds a key metric by name in the results slice.
// Returns a pointer to the metric if found, nil otherwise.
func FindKeyMetric(results []metrics.KeyMetric, name string) *metrics.KeyMetric {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// ContainsID reports whether a list of metric ids contains the given id.
func ContainsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
