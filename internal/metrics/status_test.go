package metrics

import (
	"testing"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/graph"
)

func TestMetricStatus(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		value float64
		want  Status
	}{
		// LTV:CAC boundary: exactly 3.0 is warning, strictly above is good.
		{"LTV:CAC exactly 3.0", "ltv-cac-ratio", 3.0, StatusWarning},
		{"LTV:CAC just above 3.0", "ltv-cac-ratio", 3.01, StatusGood},
		{"LTV:CAC exactly 2.0", "ltv-cac-ratio", 2.0, StatusWarning},
		{"LTV:CAC below 2.0", "ltv-cac-ratio", 1.99, StatusBad},

		{"CAC payback under a year", "cac-payback-period", 11.9, StatusGood},
		{"CAC payback exactly 12", "cac-payback-period", 12, StatusWarning},
		{"CAC payback exactly 18", "cac-payback-period", 18, StatusWarning},
		{"CAC payback beyond 18", "cac-payback-period", 18.1, StatusBad},

		{"NRR at 110", "nrr", 110, StatusGood},
		{"NRR at 100", "nrr", 100, StatusWarning},
		{"NRR below 100", "nrr", 99.9, StatusBad},

		{"GRR at 90", "grr", 90, StatusGood},
		{"GRR at 80", "grr", 80, StatusWarning},

		{"Burn multiple profitable", "burn-multiple", 0, StatusGood},
		{"Burn multiple at 1.5", "burn-multiple", 1.5, StatusWarning},
		{"Burn multiple at 2.5", "burn-multiple", 2.5, StatusWarning},
		{"Burn multiple beyond 2.5", "burn-multiple", 2.51, StatusBad},

		{"Logo churn at 1", "logo-churn-rate", 1, StatusWarning},
		{"Logo churn below 1", "logo-churn-rate", 0.9, StatusGood},

		{"Quick ratio exactly 4", "saas-quick-ratio", 4, StatusWarning},
		{"Quick ratio above 4", "saas-quick-ratio", 4.1, StatusGood},

		{"Rule of 40 at 40", "rule-of-40", 40, StatusGood},
		{"Rule of 40 at 20", "rule-of-40", 20, StatusWarning},
		{"Rule of 40 below 20", "rule-of-40", 19, StatusBad},

		{"EBITDA margin breakeven", "ebitda-margin", 0, StatusGood},
		{"EBITDA margin at -20", "ebitda-margin", -20, StatusWarning},
		{"EBITDA margin below -20", "ebitda-margin", -21, StatusBad},

		// Metrics without a threshold entry rate neutral at any value.
		{"Unknown metric", "no-such-metric", 1000, StatusNeutral},
		{"Metric without thresholds", "cost-per-lead", 1000, StatusNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MetricStatus(tt.id, tt.value); got != tt.want {
				t.Errorf("MetricStatus(%q, %v) = %q, expected %q", tt.id, tt.value, got, tt.want)
			}
		})
	}
}

func TestCalculatedMetricStatus(t *testing.T) {
	in := config.DefaultInputs("enterprise-saas")
	m := Calculate(in)

	// Gross margin at 78% clears the 75% bar.
	if got := CalculatedMetricStatus("gross-margin", in, m); got != StatusGood {
		t.Errorf("gross-margin status = %q, expected %q", got, StatusGood)
	}
	// Default profile LTV:CAC sits below 2.0.
	if got := CalculatedMetricStatus("ltv-cac-ratio", in, m); got != StatusBad {
		t.Errorf("ltv-cac-ratio status = %q, expected %q", got, StatusBad)
	}
	if got := CalculatedMetricStatus("no-such-metric", in, m); got != StatusNeutral {
		t.Errorf("unknown id status = %q, expected %q", got, StatusNeutral)
	}
}

func TestMetricValuesCoversGraph(t *testing.T) {
	in := config.DefaultInputs("enterprise-saas")
	values := MetricValues(in, Calculate(in))

	if len(values) != graph.NodeCount() {
		t.Errorf("MetricValues has %d entries, graph has %d nodes", len(values), graph.NodeCount())
	}
	for id := range graph.Relationships() {
		if _, ok := values[id]; !ok {
			t.Errorf("graph id %s missing from MetricValues", id)
		}
	}
	for id := range values {
		if !graph.Contains(id) {
			t.Errorf("MetricValues id %s not in graph", id)
		}
	}
}

func TestThresholdIDsAreGraphIDs(t *testing.T) {
	for id := range thresholds {
		if !graph.Contains(id) {
			t.Errorf("threshold id %s not in graph", id)
		}
	}
}
