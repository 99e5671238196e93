// Package graph holds the static metric relationship graph backing the
// metrics-map views. The graph is hand-authored reference data: node = metric
// id, edge = "feeds into". It never depends on live input values.
package graph

// Relationship lists the direct upstream and downstream metric ids of one node.
// Inputs feed the node; the node feeds its Outputs. Slice order is the authored
// display order and is preserved by every traversal.
type Relationship struct {
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

// relationships is the full adjacency table. Each edge appears twice: once in
// the source's Outputs and once in the destination's Inputs; Validate enforces
// this mirror invariant along with acyclicity.
var relationships = map[string]Relationship{
	// Budget tier: spend lines are pure sources.
	IDMarketingSpend: {
		Inputs:  []string{},
		Outputs: []string{IDCostPerLead, IDCostPerMQL, IDCostPerSQL, IDCostPerOpp, IDCostPerWon},
	},
	IDSalesMarketingSpend: {
		Inputs:  []string{},
		Outputs: []string{IDCACBlended, IDMagicNumber, IDTotalOpEx},
	},
	IDRDSpend: {
		Inputs:  []string{},
		Outputs: []string{IDTotalOpEx},
	},
	IDGASpend: {
		Inputs:  []string{},
		Outputs: []string{IDTotalOpEx},
	},
	IDPaidSearchSpend: {
		Inputs:  []string{},
		Outputs: []string{IDPaidImpressions, IDCPM, IDCPC, IDCACPaidOnly},
	},
	IDPaidSocialSpend: {
		Inputs:  []string{},
		Outputs: []string{IDPaidImpressions, IDCPM, IDCPC, IDCACPaidOnly},
	},
	IDEventsSpend: {
		Inputs:  []string{},
		Outputs: []string{IDLeadsGenerated},
	},
	IDContentSpend: {
		Inputs:  []string{},
		Outputs: []string{IDLeadsGenerated},
	},
	IDPartnershipsSpend: {
		Inputs:  []string{},
		Outputs: []string{IDLeadsGenerated},
	},
	IDABMSpend: {
		Inputs:  []string{},
		Outputs: []string{IDEngagedAccounts},
	},
	IDCOGSPercent: {
		Inputs:  []string{},
		Outputs: []string{IDGrossMargin},
	},

	// Activities tier: media and funnel volume.
	IDPaidImpressions: {
		Inputs:  []string{IDPaidSearchSpend, IDPaidSocialSpend},
		Outputs: []string{IDPaidClicks, IDCPM, IDCTR},
	},
	IDPaidClicks: {
		Inputs:  []string{IDPaidImpressions},
		Outputs: []string{IDCPC, IDCTR, IDClickToLeadRate},
	},
	IDLeadsGenerated: {
		Inputs:  []string{IDEventsSpend, IDContentSpend, IDPartnershipsSpend},
		Outputs: []string{IDMQLsGenerated, IDLeadToMQLRate, IDClickToLeadRate, IDCostPerLead},
	},
	IDMQLsGenerated: {
		Inputs:  []string{IDLeadsGenerated},
		Outputs: []string{IDSQLsGenerated, IDLeadToMQLRate, IDPipelineConversion, IDCostPerMQL},
	},
	IDSQLsGenerated: {
		Inputs:  []string{IDMQLsGenerated},
		Outputs: []string{IDOpportunitiesCreated, IDCostPerSQL},
	},
	IDOpportunitiesCreated: {
		Inputs:  []string{IDSQLsGenerated, IDEngagedAccounts},
		Outputs: []string{IDDealsClosedWon, IDPipelineGenerated, IDPipelineVelocity, IDCostPerOpp},
	},
	IDDealsClosedWon: {
		Inputs:  []string{IDOpportunitiesCreated, IDWinRate},
		Outputs: []string{IDNewCustomersAdded, IDPipelineConversion, IDCostPerWon},
	},
	IDWinRate: {
		Inputs:  []string{},
		Outputs: []string{IDDealsClosedWon, IDPipelineVelocity},
	},
	IDAvgDealSize: {
		Inputs:  []string{},
		Outputs: []string{IDNewBookings, IDPipelineGenerated, IDPipelineVelocity},
	},
	IDSalesCycle: {
		Inputs:  []string{},
		Outputs: []string{IDPipelineVelocity},
	},
	IDTargetAccounts: {
		Inputs:  []string{},
		Outputs: []string{IDEngagedAccounts},
	},
	IDEngagedAccounts: {
		Inputs:  []string{IDABMSpend, IDTargetAccounts},
		Outputs: []string{IDOpportunitiesCreated},
	},

	// Acquisition tier: media and funnel efficiency.
	IDCPM: {
		Inputs:  []string{IDPaidSearchSpend, IDPaidSocialSpend, IDPaidImpressions},
		Outputs: []string{},
	},
	IDCPC: {
		Inputs:  []string{IDPaidSearchSpend, IDPaidSocialSpend, IDPaidClicks},
		Outputs: []string{},
	},
	IDCTR: {
		Inputs:  []string{IDPaidImpressions, IDPaidClicks},
		Outputs: []string{},
	},
	IDClickToLeadRate: {
		Inputs:  []string{IDPaidClicks, IDLeadsGenerated},
		Outputs: []string{},
	},
	IDLeadToMQLRate: {
		Inputs:  []string{IDLeadsGenerated, IDMQLsGenerated},
		Outputs: []string{},
	},
	IDCostPerLead: {
		Inputs:  []string{IDMarketingSpend, IDLeadsGenerated},
		Outputs: []string{},
	},
	IDCostPerMQL: {
		Inputs:  []string{IDMarketingSpend, IDMQLsGenerated},
		Outputs: []string{},
	},
	IDCostPerSQL: {
		Inputs:  []string{IDMarketingSpend, IDSQLsGenerated},
		Outputs: []string{},
	},
	IDCostPerOpp: {
		Inputs:  []string{IDMarketingSpend, IDOpportunitiesCreated},
		Outputs: []string{},
	},
	IDCostPerWon: {
		Inputs:  []string{IDMarketingSpend, IDDealsClosedWon},
		Outputs: []string{},
	},
	IDCACBlended: {
		Inputs:  []string{IDSalesMarketingSpend, IDNewCustomersAdded},
		Outputs: []string{IDLTVCACRatio, IDCACPaybackPeriod, IDPaybackPeriodSM},
	},
	IDCACPaidOnly: {
		Inputs:  []string{IDPaidSearchSpend, IDPaidSocialSpend, IDNewCustomersAdded},
		Outputs: []string{},
	},
	IDPipelineGenerated: {
		Inputs:  []string{IDOpportunitiesCreated, IDAvgDealSize},
		Outputs: []string{},
	},
	IDPipelineVelocity: {
		Inputs:  []string{IDOpportunitiesCreated, IDAvgDealSize, IDWinRate, IDSalesCycle},
		Outputs: []string{},
	},
	IDPipelineConversion: {
		Inputs:  []string{IDMQLsGenerated, IDDealsClosedWon},
		Outputs: []string{},
	},

	// Revenue tier: ARR movement and customer base.
	IDNewCustomersAdded: {
		Inputs:  []string{IDDealsClosedWon},
		Outputs: []string{IDNewBookings, IDCACBlended, IDCACPaidOnly, IDEndingCustomerCount},
	},
	IDNewBookings: {
		Inputs:  []string{IDNewCustomersAdded, IDAvgDealSize},
		Outputs: []string{IDNetNewARR, IDSaaSQuickRatio, IDPaybackPeriodSM},
	},
	IDExpansionARR: {
		Inputs:  []string{},
		Outputs: []string{IDNetNewARR, IDNRR, IDSaaSQuickRatio},
	},
	IDChurnedARR: {
		Inputs:  []string{},
		Outputs: []string{IDNetNewARR, IDGRR, IDNRR, IDSaaSQuickRatio},
	},
	IDNetNewARR: {
		Inputs:  []string{IDNewBookings, IDExpansionARR, IDChurnedARR},
		Outputs: []string{IDEndingARR, IDMagicNumber, IDARRGrowthRate, IDBurnMultiple},
	},
	IDBeginningARR: {
		Inputs:  []string{},
		Outputs: []string{IDEndingARR, IDARRGrowthRate, IDARPA, IDGRR, IDNRR},
	},
	IDEndingARR: {
		Inputs:  []string{IDBeginningARR, IDNetNewARR},
		Outputs: []string{IDMRR},
	},
	IDMRR: {
		Inputs:  []string{IDEndingARR},
		Outputs: []string{IDGrossProfit, IDEBITDAMargin},
	},
	IDARPA: {
		Inputs:  []string{IDBeginningARR, IDCustomerCount},
		Outputs: []string{IDLTV, IDCACPaybackPeriod},
	},
	IDCustomerCount: {
		Inputs:  []string{},
		Outputs: []string{IDARPA, IDLogoChurnRate, IDEndingCustomerCount},
	},
	IDCustomersChurned: {
		Inputs:  []string{},
		Outputs: []string{IDLogoChurnRate, IDEndingCustomerCount},
	},
	IDEndingCustomerCount: {
		Inputs:  []string{IDCustomerCount, IDCustomersChurned, IDNewCustomersAdded},
		Outputs: []string{},
	},
	IDLogoChurnRate: {
		Inputs:  []string{IDCustomersChurned, IDCustomerCount},
		Outputs: []string{},
	},
	IDGRR: {
		Inputs:  []string{IDBeginningARR, IDChurnedARR},
		Outputs: []string{IDAnnualizedGRR},
	},
	IDNRR: {
		Inputs:  []string{IDBeginningARR, IDChurnedARR, IDExpansionARR},
		Outputs: []string{IDAnnualizedNRR},
	},
	IDAvgCustomerLifetime: {
		Inputs:  []string{},
		Outputs: []string{IDLTV},
	},

	// Outcomes tier: headline economics.
	IDARRGrowthRate: {
		Inputs:  []string{IDNetNewARR, IDBeginningARR},
		Outputs: []string{IDAnnualizedGrowthRate},
	},
	IDAnnualizedGrowthRate: {
		Inputs:  []string{IDARRGrowthRate},
		Outputs: []string{IDRuleOf40},
	},
	IDAnnualizedGRR: {
		Inputs:  []string{IDGRR},
		Outputs: []string{},
	},
	IDAnnualizedNRR: {
		Inputs:  []string{IDNRR},
		Outputs: []string{},
	},
	IDGrossMargin: {
		Inputs:  []string{IDCOGSPercent},
		Outputs: []string{IDGrossProfit, IDCACPaybackPeriod},
	},
	IDGrossProfit: {
		Inputs:  []string{IDMRR, IDGrossMargin},
		Outputs: []string{IDEBITDA},
	},
	IDTotalOpEx: {
		Inputs:  []string{IDSalesMarketingSpend, IDRDSpend, IDGASpend},
		Outputs: []string{IDEBITDA},
	},
	IDEBITDA: {
		Inputs:  []string{IDGrossProfit, IDTotalOpEx},
		Outputs: []string{IDEBITDAMargin, IDBurnMultiple},
	},
	IDEBITDAMargin: {
		Inputs:  []string{IDEBITDA, IDMRR},
		Outputs: []string{IDRuleOf40},
	},
	IDRuleOf40: {
		Inputs:  []string{IDAnnualizedGrowthRate, IDEBITDAMargin},
		Outputs: []string{},
	},
	IDMagicNumber: {
		Inputs:  []string{IDNetNewARR, IDSalesMarketingSpend},
		Outputs: []string{},
	},
	IDBurnMultiple: {
		Inputs:  []string{IDEBITDA, IDNetNewARR},
		Outputs: []string{},
	},
	IDSaaSQuickRatio: {
		Inputs:  []string{IDNewBookings, IDExpansionARR, IDChurnedARR},
		Outputs: []string{},
	},
	IDLTV: {
		Inputs:  []string{IDARPA, IDAvgCustomerLifetime},
		Outputs: []string{IDLTVCACRatio},
	},
	IDLTVCACRatio: {
		Inputs:  []string{IDLTV, IDCACBlended},
		Outputs: []string{},
	},
	IDCACPaybackPeriod: {
		Inputs:  []string{IDCACBlended, IDARPA, IDGrossMargin},
		Outputs: []string{},
	},
	IDPaybackPeriodSM: {
		Inputs:  []string{IDCACBlended, IDNewBookings},
		Outputs: []string{},
	},
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Relationships returns the full adjacency table. The returned map is the
// live static table; callers must treat it as read-only.
func Relationships() map[string]Relationship {
	return relationships
}

// Contains reports whether the id is part of the graph's namespace.
func Contains(id string) bool {
	_, ok := relationships[id]
	return ok
}

// NodeCount returns the number of metric ids in the graph.
func NodeCount() int {
	return len(relationships)
}
