// Package metrics implements the SaaS metrics derivation engine: one pure
// function from a monthly input record to ~45 derived KPIs, plus the
// threshold/status evaluation layered on top for headline display.
package metrics

// CalculatedMetrics is the flat output record of one calculation. Every field
// is derived from a single Inputs record with no external state; the whole
// record is recomputed on every input change.
//
// Units per field are noted inline; they follow the input conventions
// ($M for ARR-level aggregates, $K for flows, raw $ for per-unit economics)
// and are load-bearing for every downstream consumer.
type CalculatedMetrics struct {
	// ARR & growth
	NewBookings          float64 `json:"newBookings" yaml:"newBookings"`                   // $K
	NetNewARR            float64 `json:"netNewARR" yaml:"netNewARR"`                       // $K
	EndingARR            float64 `json:"endingARR" yaml:"endingARR"`                       // $M
	MRR                  float64 `json:"mrr" yaml:"mrr"`                                   // $M
	ARRGrowthRateMonthly float64 `json:"arrGrowthRateMonthly" yaml:"arrGrowthRateMonthly"` // %
	AnnualizedGrowthRate float64 `json:"annualizedGrowthRate" yaml:"annualizedGrowthRate"` // %

	// Retention
	GRR                 float64 `json:"grr" yaml:"grr"`                                 // %
	NRR                 float64 `json:"nrr" yaml:"nrr"`                                 // %
	AnnualizedGRR       float64 `json:"annualizedGRR" yaml:"annualizedGRR"`             // %
	AnnualizedNRR       float64 `json:"annualizedNRR" yaml:"annualizedNRR"`             // %
	LogoChurnRate       float64 `json:"logoChurnRate" yaml:"logoChurnRate"`             // %
	EndingCustomerCount float64 `json:"endingCustomerCount" yaml:"endingCustomerCount"` // count

	// Pipeline
	SQLsGenerated        float64 `json:"sqlsGenerated" yaml:"sqlsGenerated"`               // count, rounded
	OpportunitiesCreated float64 `json:"opportunitiesCreated" yaml:"opportunitiesCreated"` // count, rounded
	DealsClosedWon       float64 `json:"dealsClosedWon" yaml:"dealsClosedWon"`             // count, rounded
	PipelineGenerated    float64 `json:"pipelineGenerated" yaml:"pipelineGenerated"`       // $K
	PipelineConversion   float64 `json:"pipelineConversion" yaml:"pipelineConversion"`     // %
	PipelineVelocity     float64 `json:"pipelineVelocity" yaml:"pipelineVelocity"`         // $/day

	// Marketing & sales efficiency
	ARPA             float64 `json:"arpa" yaml:"arpa"`                         // $/month
	CACBlended       float64 `json:"cacBlended" yaml:"cacBlended"`             // $K
	CACPaidOnly      float64 `json:"cacPaidOnly" yaml:"cacPaidOnly"`           // $K
	LTV              float64 `json:"ltv" yaml:"ltv"`                           // $
	LTVCACRatio      float64 `json:"ltvCacRatio" yaml:"ltvCacRatio"`           // ratio
	GrossMargin      float64 `json:"grossMargin" yaml:"grossMargin"`           // %
	CACPaybackPeriod float64 `json:"cacPaybackPeriod" yaml:"cacPaybackPeriod"` // months
	CostPerLead      float64 `json:"costPerLead" yaml:"costPerLead"`           // $
	CostPerMQL       float64 `json:"costPerMQL" yaml:"costPerMQL"`             // $
	CostPerSQL       float64 `json:"costPerSQL" yaml:"costPerSQL"`             // $
	CostPerOpp       float64 `json:"costPerOpp" yaml:"costPerOpp"`             // $
	CostPerWon       float64 `json:"costPerWon" yaml:"costPerWon"`             // $
	CPM              float64 `json:"cpm" yaml:"cpm"`                           // $ per 1000 impressions
	CPC              float64 `json:"cpc" yaml:"cpc"`                           // $
	CTR              float64 `json:"ctr" yaml:"ctr"`                           // %
	ClickToLeadRate  float64 `json:"clickToLeadRate" yaml:"clickToLeadRate"`   // %
	LeadToMQLRate    float64 `json:"leadToMQLRate" yaml:"leadToMQLRate"`       // %
	MagicNumber      float64 `json:"magicNumber" yaml:"magicNumber"`           // ratio
	PaybackPeriodSM  float64 `json:"paybackPeriodSM" yaml:"paybackPeriodSM"`   // months

	// Financial performance
	GrossProfit    float64 `json:"grossProfit" yaml:"grossProfit"`       // $K
	TotalOpEx      float64 `json:"totalOpEx" yaml:"totalOpEx"`           // $K
	EBITDA         float64 `json:"ebitda" yaml:"ebitda"`                 // $K
	EBITDAMargin   float64 `json:"ebitdaMargin" yaml:"ebitdaMargin"`     // %
	RuleOf40       float64 `json:"ruleOf40" yaml:"ruleOf40"`             // points
	SaaSQuickRatio float64 `json:"saasQuickRatio" yaml:"saasQuickRatio"` // ratio
	BurnMultiple   float64 `json:"burnMultiple" yaml:"burnMultiple"`     // ratio, 0 when profitable
}
