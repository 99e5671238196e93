package metrics

import (
	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/graph"
	"github.com/iwvelando/saas-metrics/pkg/format"
)

// KeyMetric is a display-ready projection of one headline metric against its
// fixed target. Recomputed fresh from CalculatedMetrics on every change.
type KeyMetric struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Target string `json:"target" yaml:"target"`
	Status Status `json:"status" yaml:"status"`
}

// keyMetricDef drives the fixed-order headline list: which metric, how to
// render it, and the target text shown next to the value.
type keyMetricDef struct {
	id     string
	name   string
	target string
	render func(v float64) string
}

var keyMetricDefs = []keyMetricDef{
	{graph.IDARRGrowthRate, "ARR Growth Rate", ">= 5% monthly", format.Percent},
	{graph.IDNRR, "Net Revenue Retention", ">= 110%", format.Percent},
	{graph.IDGRR, "Gross Revenue Retention", ">= 90%", format.Percent},
	{graph.IDLTVCACRatio, "LTV:CAC Ratio", "> 3.0x", format.Ratio},
	{graph.IDCACPaybackPeriod, "CAC Payback", "< 12 mo", format.Months},
	{graph.IDRuleOf40, "Rule of 40", ">= 40", func(v float64) string { return format.NumericCurrency(v) }},
	{graph.IDMagicNumber, "Magic Number", ">= 1.0x", format.Ratio},
	{graph.IDBurnMultiple, "Burn Multiple", "< 1.5x", format.Ratio},
	{graph.IDGrossMargin, "Gross Margin", ">= 75%", format.Percent},
	{graph.IDLogoChurnRate, "Logo Churn", "< 1% monthly", format.Percent},
}

// KeyMetrics projects the headline metrics for dashboard display, in fixed
// order, each rated against the threshold table.
func KeyMetrics(in config.Inputs, m CalculatedMetrics) []KeyMetric {
	values := MetricValues(in, m)

	out := make([]KeyMetric, 0, len(keyMetricDefs))
	for _, def := range keyMetricDefs {
		value := values[def.id]
		out = append(out, KeyMetric{
			ID:     def.id,
			Name:   def.name,
			Value:  def.render(value),
			Target: def.target,
			Status: MetricStatus(def.id, value),
		})
	}
	return out
}
