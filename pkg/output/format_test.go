package output

import (
	"strings"
	"testing"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/metrics"
)

func defaultReport() Report {
	in := config.DefaultInputs("enterprise-saas")
	m := metrics.Calculate(in)
	return Report{
		Industry:   "enterprise-saas",
		Inputs:     in,
		Metrics:    m,
		KeyMetrics: metrics.KeyMetrics(in, m),
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(defaultReport())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if lines[0] != `"metric","value"` {
		t.Errorf("header = %q", lines[0])
	}
	// One row per graph id plus the header.
	if len(lines) != 72 {
		t.Errorf("csv has %d lines, expected 72", len(lines))
	}

	if !strings.Contains(csv, `"net-new-arr","3400.00"`) {
		t.Errorf("csv missing net-new-arr row:\n%s", csv)
	}
	if !strings.Contains(csv, `"ending-arr","153.40"`) {
		t.Errorf("csv missing ending-arr row:\n%s", csv)
	}

	// Rows are sorted by metric id.
	for i := 2; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			t.Fatalf("rows out of order at line %d: %q >= %q", i, lines[i-1], lines[i])
		}
	}
}

func TestCsvStringDeterministic(t *testing.T) {
	r := defaultReport()
	if CsvString(r) != CsvString(r) {
		t.Error("CsvString not deterministic across calls")
	}
}
