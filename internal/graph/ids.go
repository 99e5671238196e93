package graph

// Metric identifiers. These are the canonical string ids shared by the
// relationship graph, the status threshold table, and the metric value map;
// presentation layers address metrics exclusively through them.
const (
	// Budget tier
	IDMarketingSpend      = "marketing-spend"
	IDSalesMarketingSpend = "sales-marketing-spend"
	IDRDSpend             = "rd-spend"
	IDGASpend             = "ga-spend"
	IDPaidSearchSpend     = "paid-search-spend"
	IDPaidSocialSpend     = "paid-social-spend"
	IDEventsSpend         = "events-spend"
	IDContentSpend        = "content-spend"
	IDPartnershipsSpend   = "partnerships-spend"
	IDABMSpend            = "abm-spend"
	IDCOGSPercent         = "cogs-percent"

	// Activities tier
	IDPaidImpressions      = "paid-impressions"
	IDPaidClicks           = "paid-clicks"
	IDLeadsGenerated       = "leads-generated"
	IDMQLsGenerated        = "mqls-generated"
	IDSQLsGenerated        = "sqls-generated"
	IDOpportunitiesCreated = "opportunities-created"
	IDDealsClosedWon       = "deals-closed-won"
	IDWinRate              = "win-rate"
	IDAvgDealSize          = "avg-deal-size"
	IDSalesCycle           = "sales-cycle"
	IDTargetAccounts       = "target-accounts"
	IDEngagedAccounts      = "engaged-accounts"

	// Acquisition tier
	IDCPM                = "cpm"
	IDCPC                = "cpc"
	IDCTR                = "ctr"
	IDClickToLeadRate    = "click-to-lead-rate"
	IDLeadToMQLRate      = "lead-to-mql-rate"
	IDCostPerLead        = "cost-per-lead"
	IDCostPerMQL         = "cost-per-mql"
	IDCostPerSQL         = "cost-per-sql"
	IDCostPerOpp         = "cost-per-opp"
	IDCostPerWon         = "cost-per-won"
	IDCACBlended         = "cac-blended"
	IDCACPaidOnly        = "cac-paid-only"
	IDPipelineGenerated  = "pipeline-generated"
	IDPipelineVelocity   = "pipeline-velocity"
	IDPipelineConversion = "pipeline-conversion"

	// Revenue tier
	IDNewCustomersAdded   = "new-customers-added"
	IDNewBookings         = "new-bookings"
	IDExpansionARR        = "expansion-arr"
	IDChurnedARR          = "churned-arr"
	IDNetNewARR           = "net-new-arr"
	IDBeginningARR        = "beginning-arr"
	IDEndingARR           = "ending-arr"
	IDMRR                 = "mrr"
	IDARPA                = "arpa"
	IDCustomerCount       = "customer-count"
	IDCustomersChurned    = "customers-churned"
	IDEndingCustomerCount = "ending-customer-count"
	IDLogoChurnRate       = "logo-churn-rate"
	IDGRR                 = "grr"
	IDNRR                 = "nrr"
	IDAvgCustomerLifetime = "avg-customer-lifetime"

	// Outcomes tier
	IDARRGrowthRate        = "arr-growth-rate"
	IDAnnualizedGrowthRate = "annualized-growth-rate"
	IDAnnualizedGRR        = "annualized-grr"
	IDAnnualizedNRR        = "annualized-nrr"
	IDGrossMargin          = "gross-margin"
	IDGrossProfit          = "gross-profit"
	IDTotalOpEx            = "total-opex"
	IDEBITDA               = "ebitda"
	IDEBITDAMargin         = "ebitda-margin"
	IDRuleOf40             = "rule-of-40"
	IDMagicNumber          = "magic-number"
	IDBurnMultiple         = "burn-multiple"
	IDSaaSQuickRatio       = "saas-quick-ratio"
	IDLTV                  = "ltv"
	IDLTVCACRatio          = "ltv-cac-ratio"
	IDCACPaybackPeriod     = "cac-payback-period"
	IDPaybackPeriodSM      = "payback-period-sm"
)

// Tier names for the five conceptual layers of the metrics map.
const (
	TierBudget      = "budget"
	TierActivities  = "activities"
	TierAcquisition = "acquisition"
	TierRevenue     = "revenue"
	TierOutcomes    = "outcomes"
)

// tiers assigns every metric id to its conceptual layer. The visualization
// layer uses this for vertical placement; it has no effect on traversal.
var tiers = map[string]string{
	IDMarketingSpend:      TierBudget,
	IDSalesMarketingSpend: TierBudget,
	IDRDSpend:             TierBudget,
	IDGASpend:             TierBudget,
	IDPaidSearchSpend:     TierBudget,
	IDPaidSocialSpend:     TierBudget,
	IDEventsSpend:         TierBudget,
	IDContentSpend:        TierBudget,
	IDPartnershipsSpend:   TierBudget,
	IDABMSpend:            TierBudget,
	IDCOGSPercent:         TierBudget,

	IDPaidImpressions:      TierActivities,
	IDPaidClicks:           TierActivities,
	IDLeadsGenerated:       TierActivities,
	IDMQLsGenerated:        TierActivities,
	IDSQLsGenerated:        TierActivities,
	IDOpportunitiesCreated: TierActivities,
	IDDealsClosedWon:       TierActivities,
	IDWinRate:              TierActivities,
	IDAvgDealSize:          TierActivities,
	IDSalesCycle:           TierActivities,
	IDTargetAccounts:       TierActivities,
	IDEngagedAccounts:      TierActivities,

	IDCPM:                TierAcquisition,
	IDCPC:                TierAcquisition,
	IDCTR:                TierAcquisition,
	IDClickToLeadRate:    TierAcquisition,
	IDLeadToMQLRate:      TierAcquisition,
	IDCostPerLead:        TierAcquisition,
	IDCostPerMQL:         TierAcquisition,
	IDCostPerSQL:         TierAcquisition,
	IDCostPerOpp:         TierAcquisition,
	IDCostPerWon:         TierAcquisition,
	IDCACBlended:         TierAcquisition,
	IDCACPaidOnly:        TierAcquisition,
	IDPipelineGenerated:  TierAcquisition,
	IDPipelineVelocity:   TierAcquisition,
	IDPipelineConversion: TierAcquisition,

	IDNewCustomersAdded:   TierRevenue,
	IDNewBookings:         TierRevenue,
	IDExpansionARR:        TierRevenue,
	IDChurnedARR:          TierRevenue,
	IDNetNewARR:           TierRevenue,
	IDBeginningARR:        TierRevenue,
	IDEndingARR:           TierRevenue,
	IDMRR:                 TierRevenue,
	IDARPA:                TierRevenue,
	IDCustomerCount:       TierRevenue,
	IDCustomersChurned:    TierRevenue,
	IDEndingCustomerCount: TierRevenue,
	IDLogoChurnRate:       TierRevenue,
	IDGRR:                 TierRevenue,
	IDNRR:                 TierRevenue,
	IDAvgCustomerLifetime: TierRevenue,

	IDARRGrowthRate:        TierOutcomes,
	IDAnnualizedGrowthRate: TierOutcomes,
	IDAnnualizedGRR:        TierOutcomes,
	IDAnnualizedNRR:        TierOutcomes,
	IDGrossMargin:          TierOutcomes,
	IDGrossProfit:          TierOutcomes,
	IDTotalOpEx:            TierOutcomes,
	IDEBITDA:               TierOutcomes,
	IDEBITDAMargin:         TierOutcomes,
	IDRuleOf40:             TierOutcomes,
	IDMagicNumber:          TierOutcomes,
	IDBurnMultiple:         TierOutcomes,
	IDSaaSQuickRatio:       TierOutcomes,
	IDLTV:                  TierOutcomes,
	IDLTVCACRatio:          TierOutcomes,
	IDCACPaybackPeriod:     TierOutcomes,
	IDPaybackPeriodSM:      TierOutcomes,
}

// Tier returns the conceptual layer for a metric id, or "" when unknown.
func Tier(id string) string {
	return tiers[id]
}
