// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/metrics"
)

// Report bundles one complete calculation for rendering.
type Report struct {
	Industry   string
	Inputs     config.Inputs
	Metrics    metrics.CalculatedMetrics
	KeyMetrics []metrics.KeyMetric
	Warnings   []string
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(r Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Key metrics (%s) ---\n", r.Industry)
	fmt.Printf("Metric                    | Value        | Target       | Status\n")
	fmt.Printf("______                    | _____        | ______       | ______\n")
	for _, km := range r.KeyMetrics {
		fmt.Printf("%-25s | %-12s | %-12s | %s\n", km.Name, km.Value, km.Target, km.Status)
	}

	fmt.Printf("\n--- All metrics ---\n")
	for _, row := range sortedRows(r) {
		_, _ = p.Printf("%-25s | %.2f\n", row.id, row.value)
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("\n--- Warnings ---\n")
		for _, warning := range r.Warnings {
			fmt.Printf("%s\n", warning)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(r Report) {
	fmt.Print(CsvString(r))
}

// CsvString renders the report as CSV, one metric id per row.
func CsvString(r Report) string {
	var builder strings.Builder
	builder.WriteString(`"metric","value"` + "\n")
	for _, row := range sortedRows(r) {
		builder.WriteString(fmt.Sprintf(`"%s","%.2f"`+"\n", row.id, row.value))
	}
	return builder.String()
}

type metricRow struct {
	id    string
	value float64
}

func sortedRows(r Report) []metricRow {
	values := metrics.MetricValues(r.Inputs, r.Metrics)
	rows := make([]metricRow, 0, len(values))
	for id, value := range values {
		rows = append(rows, metricRow{id: id, value: value})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })
	return rows
}
