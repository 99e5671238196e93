package metrics

import (
	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/graph"
)

// Status is the qualitative rating of a metric value against its thresholds.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusBad     Status = "bad"
	// StatusNeutral is returned for metrics with no threshold entry.
	StatusNeutral Status = "neutral"
)

// threshold holds the two predicates for one metric. A value passing Good is
// good, a value failing Good but passing Warn is warning, anything else is
// bad. Boundary choices (strict vs inclusive) are intentional per metric:
// LTV:CAC of exactly 3.0 is warning, not good.
type threshold struct {
	Good func(v float64) bool
	Warn func(v float64) bool
}

// thresholds is the declarative status table keyed by metric id. Metrics
// absent from the table are neutral.
var thresholds = map[string]threshold{
	graph.IDLTVCACRatio: {
		Good: func(v float64) bool { return v > 3 },
		Warn: func(v float64) bool { return v >= 2 && v <= 3 },
	},
	graph.IDCACPaybackPeriod: {
		Good: func(v float64) bool { return v < 12 },
		Warn: func(v float64) bool { return v <= 18 },
	},
	graph.IDNRR: {
		Good: func(v float64) bool { return v >= 110 },
		Warn: func(v float64) bool { return v >= 100 },
	},
	graph.IDGRR: {
		Good: func(v float64) bool { return v >= 90 },
		Warn: func(v float64) bool { return v >= 80 },
	},
	graph.IDARRGrowthRate: {
		Good: func(v float64) bool { return v >= 5 },
		Warn: func(v float64) bool { return v >= 2 },
	},
	graph.IDAnnualizedGrowthRate: {
		Good: func(v float64) bool { return v >= 60 },
		Warn: func(v float64) bool { return v >= 25 },
	},
	graph.IDRuleOf40: {
		Good: func(v float64) bool { return v >= 40 },
		Warn: func(v float64) bool { return v >= 20 },
	},
	graph.IDMagicNumber: {
		Good: func(v float64) bool { return v >= 1 },
		Warn: func(v float64) bool { return v >= 0.5 },
	},
	graph.IDBurnMultiple: {
		Good: func(v float64) bool { return v < 1.5 },
		Warn: func(v float64) bool { return v <= 2.5 },
	},
	graph.IDLogoChurnRate: {
		Good: func(v float64) bool { return v < 1 },
		Warn: func(v float64) bool { return v <= 2 },
	},
	graph.IDSaaSQuickRatio: {
		Good: func(v float64) bool { return v > 4 },
		Warn: func(v float64) bool { return v >= 2 },
	},
	graph.IDGrossMargin: {
		Good: func(v float64) bool { return v >= 75 },
		Warn: func(v float64) bool { return v >= 60 },
	},
	graph.IDEBITDAMargin: {
		Good: func(v float64) bool { return v >= 0 },
		Warn: func(v float64) bool { return v >= -20 },
	},
	graph.IDWinRate: {
		Good: func(v float64) bool { return v >= 25 },
		Warn: func(v float64) bool { return v >= 15 },
	},
	graph.IDPipelineConversion: {
		Good: func(v float64) bool { return v >= 10 },
		Warn: func(v float64) bool { return v >= 5 },
	},
	graph.IDCTR: {
		Good: func(v float64) bool { return v >= 1 },
		Warn: func(v float64) bool { return v >= 0.5 },
	},
}

// MetricStatus rates a value against the threshold table for the given metric
// id. Metrics without a table entry rate neutral.
func MetricStatus(id string, value float64) Status {
	t, ok := thresholds[id]
	if !ok {
		return StatusNeutral
	}
	if t.Good(value) {
		return StatusGood
	}
	if t.Warn(value) {
		return StatusWarning
	}
	return StatusBad
}

// CalculatedMetricStatus resolves a metric id to its live value through the
// canonical value map and rates it. Ids outside the value map rate neutral.
func CalculatedMetricStatus(id string, in config.Inputs, m CalculatedMetrics) Status {
	values := MetricValues(in, m)
	value, ok := values[id]
	if !ok {
		return StatusNeutral
	}
	return MetricStatus(id, value)
}

// MetricValues builds the single canonical id-to-value map covering the
// graph's full id namespace, inputs and derived metrics alike. Every consumer
// that needs a live value for a metric id (status rating, key metrics, graph
// popovers) goes through this one builder so the id namespace cannot drift.
func MetricValues(in config.Inputs, m CalculatedMetrics) map[string]float64 {
	return map[string]float64{
		// Budget tier (inputs)
		graph.IDMarketingSpend:      in.MarketingSpend,
		graph.IDSalesMarketingSpend: in.TotalSalesMarketing,
		graph.IDRDSpend:             in.RDSpend,
		graph.IDGASpend:             in.GASpend,
		graph.IDPaidSearchSpend:     in.PaidSearchSpend,
		graph.IDPaidSocialSpend:     in.PaidSocialSpend,
		graph.IDEventsSpend:         in.EventsSpend,
		graph.IDContentSpend:        in.ContentSpend,
		graph.IDPartnershipsSpend:   in.PartnershipsSpend,
		graph.IDABMSpend:            in.ABMSpend,
		graph.IDCOGSPercent:         in.COGSPercent,

		// Activities tier
		graph.IDPaidImpressions:      in.PaidImpressions,
		graph.IDPaidClicks:           in.PaidClicks,
		graph.IDLeadsGenerated:       in.LeadsGenerated,
		graph.IDMQLsGenerated:        in.MQLsGenerated,
		graph.IDSQLsGenerated:        m.SQLsGenerated,
		graph.IDOpportunitiesCreated: m.OpportunitiesCreated,
		graph.IDDealsClosedWon:       m.DealsClosedWon,
		graph.IDWinRate:              in.WinRate,
		graph.IDAvgDealSize:          in.AvgDealSize,
		graph.IDSalesCycle:           in.SalesCycle,
		graph.IDTargetAccounts:       in.TargetAccounts,
		graph.IDEngagedAccounts:      in.EngagedAccounts,

		// Acquisition tier
		graph.IDCPM:                m.CPM,
		graph.IDCPC:                m.CPC,
		graph.IDCTR:                m.CTR,
		graph.IDClickToLeadRate:    m.ClickToLeadRate,
		graph.IDLeadToMQLRate:      m.LeadToMQLRate,
		graph.IDCostPerLead:        m.CostPerLead,
		graph.IDCostPerMQL:         m.CostPerMQL,
		graph.IDCostPerSQL:         m.CostPerSQL,
		graph.IDCostPerOpp:         m.CostPerOpp,
		graph.IDCostPerWon:         m.CostPerWon,
		graph.IDCACBlended:         m.CACBlended,
		graph.IDCACPaidOnly:        m.CACPaidOnly,
		graph.IDPipelineGenerated:  m.PipelineGenerated,
		graph.IDPipelineVelocity:   m.PipelineVelocity,
		graph.IDPipelineConversion: m.PipelineConversion,

		// Revenue tier
		graph.IDNewCustomersAdded:   in.NewCustomersAdded,
		graph.IDNewBookings:         m.NewBookings,
		graph.IDExpansionARR:        in.ExpansionARR,
		graph.IDChurnedARR:          in.ChurnedARR,
		graph.IDNetNewARR:           m.NetNewARR,
		graph.IDBeginningARR:        in.BeginningARR,
		graph.IDEndingARR:           m.EndingARR,
		graph.IDMRR:                 m.MRR,
		graph.IDARPA:                m.ARPA,
		graph.IDCustomerCount:       in.TotalCustomers,
		graph.IDCustomersChurned:    in.CustomersChurned,
		graph.IDEndingCustomerCount: m.EndingCustomerCount,
		graph.IDLogoChurnRate:       m.LogoChurnRate,
		graph.IDGRR:                 m.GRR,
		graph.IDNRR:                 m.NRR,
		graph.IDAvgCustomerLifetime: in.AvgCustomerLifetime,

		// Outcomes tier
		graph.IDARRGrowthRate:        m.ARRGrowthRateMonthly,
		graph.IDAnnualizedGrowthRate: m.AnnualizedGrowthRate,
		graph.IDAnnualizedGRR:        m.AnnualizedGRR,
		graph.IDAnnualizedNRR:        m.AnnualizedNRR,
		graph.IDGrossMargin:          m.GrossMargin,
		graph.IDGrossProfit:          m.GrossProfit,
		graph.IDTotalOpEx:            m.TotalOpEx,
		graph.IDEBITDA:               m.EBITDA,
		graph.IDEBITDAMargin:         m.EBITDAMargin,
		graph.IDRuleOf40:             m.RuleOf40,
		graph.IDMagicNumber:          m.MagicNumber,
		graph.IDBurnMultiple:         m.BurnMultiple,
		graph.IDSaaSQuickRatio:       m.SaaSQuickRatio,
		graph.IDLTV:                  m.LTV,
		graph.IDLTVCACRatio:          m.LTVCACRatio,
		graph.IDCACPaybackPeriod:     m.CACPaybackPeriod,
		graph.IDPaybackPeriodSM:      m.PaybackPeriodSM,
	}
}
