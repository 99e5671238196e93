package config

import (
	"sort"

	"go.uber.org/zap"

	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// Industry input profiles. Switching industry swaps the entire default Inputs
// record before user overrides are applied; the calculation core itself never
// sees the industry name.
var industryProfiles = map[string]Inputs{
	"enterprise-saas": {
		BeginningARR:   150,
		TotalCustomers: 850,

		ExpansionARR:      1600,
		ChurnedARR:        650,
		CustomersChurned:  6,
		NewCustomersAdded: 14,

		LeadsGenerated:     2400,
		MQLsGenerated:      960,
		MQLToSQLConversion: 35,
		SQLToOppConversion: 40,
		WinRate:            22,
		AvgDealSize:        175,
		SalesCycle:         4.5,

		PaidSearchSpend:   320,
		PaidSearchLeads:   520,
		PaidSocialSpend:   210,
		PaidSocialLeads:   430,
		EventsSpend:       400,
		EventsLeads:       280,
		ContentSpend:      150,
		ContentLeads:      610,
		PartnershipsSpend: 120,
		PartnershipsLeads: 160,

		TargetAccounts:  400,
		EngagedAccounts: 130,
		ABMSpend:        180,

		PaidImpressions: 4200000,
		PaidClicks:      58000,

		TotalSalesMarketing: 3800,
		MarketingSpend:      1200,
		RDSpend:             2600,
		GASpend:             900,

		COGSPercent:         22,
		AvgCustomerLifetime: 36,
	},
	"smb-saas": {
		BeginningARR:   24,
		TotalCustomers: 2100,

		ExpansionARR:      180,
		ChurnedARR:        210,
		CustomersChurned:  42,
		NewCustomersAdded: 95,

		LeadsGenerated:     8600,
		MQLsGenerated:      2580,
		MQLToSQLConversion: 28,
		SQLToOppConversion: 45,
		WinRate:            30,
		AvgDealSize:        9.5,
		SalesCycle:         1.2,

		PaidSearchSpend:   140,
		PaidSearchLeads:   2900,
		PaidSocialSpend:   110,
		PaidSocialLeads:   2400,
		EventsSpend:       40,
		EventsLeads:       300,
		ContentSpend:      65,
		ContentLeads:      2300,
		PartnershipsSpend: 25,
		PartnershipsLeads: 700,

		TargetAccounts:  0,
		EngagedAccounts: 0,
		ABMSpend:        0,

		PaidImpressions: 9800000,
		PaidClicks:      176000,

		TotalSalesMarketing: 620,
		MarketingSpend:      380,
		RDSpend:             520,
		GASpend:             210,

		COGSPercent:         28,
		AvgCustomerLifetime: 22,
	},
	"fintech": {
		BeginningARR:   85,
		TotalCustomers: 310,

		ExpansionARR:      950,
		ChurnedARR:        280,
		CustomersChurned:  2,
		NewCustomersAdded: 6,

		LeadsGenerated:     1100,
		MQLsGenerated:      410,
		MQLToSQLConversion: 32,
		SQLToOppConversion: 38,
		WinRate:            18,
		AvgDealSize:        260,
		SalesCycle:         7,

		PaidSearchSpend:   180,
		PaidSearchLeads:   240,
		PaidSocialSpend:   90,
		PaidSocialLeads:   150,
		EventsSpend:       520,
		EventsLeads:       210,
		ContentSpend:      170,
		ContentLeads:      380,
		PartnershipsSpend: 260,
		PartnershipsLeads: 120,

		TargetAccounts:  220,
		EngagedAccounts: 75,
		ABMSpend:        240,

		PaidImpressions: 2100000,
		PaidClicks:      24000,

		TotalSalesMarketing: 2400,
		MarketingSpend:      980,
		RDSpend:             2100,
		GASpend:             760,

		COGSPercent:         31,
		AvgCustomerLifetime: 48,
	},
	"devtools": {
		BeginningARR:   42,
		TotalCustomers: 1400,

		ExpansionARR:      520,
		ChurnedARR:        190,
		CustomersChurned:  21,
		NewCustomersAdded: 60,

		LeadsGenerated:     5200,
		MQLsGenerated:      1350,
		MQLToSQLConversion: 30,
		SQLToOppConversion: 50,
		WinRate:            35,
		AvgDealSize:        14,
		SalesCycle:         2,

		PaidSearchSpend:   95,
		PaidSearchLeads:   900,
		PaidSocialSpend:   70,
		PaidSocialLeads:   620,
		EventsSpend:       130,
		EventsLeads:       450,
		ContentSpend:      210,
		ContentLeads:      2700,
		PartnershipsSpend: 55,
		PartnershipsLeads: 530,

		TargetAccounts:  150,
		EngagedAccounts: 48,
		ABMSpend:        60,

		PaidImpressions: 6100000,
		PaidClicks:      92000,

		TotalSalesMarketing: 980,
		MarketingSpend:      560,
		RDSpend:             1500,
		GASpend:             340,

		COGSPercent:         18,
		AvgCustomerLifetime: 30,
	},
}

// DefaultInputs returns the default input record for an industry vertical.
// Unknown industries fall back to the default profile with a warning, matching
// the warn-and-continue policy used for unknown graph ids.
func DefaultInputs(industry string) Inputs {
	if industry == "" {
		industry = constants.DefaultIndustry
	}
	profile, ok := industryProfiles[industry]
	if !ok {
		zap.L().Warn("unknown industry, using default profile",
			zap.String("op", "config.DefaultInputs"),
			zap.String("industry", industry),
			zap.String("fallback", constants.DefaultIndustry),
		)
		return industryProfiles[constants.DefaultIndustry]
	}
	return profile
}

// Industries lists the available industry profile names, sorted.
func Industries() []string {
	names := make([]string, 0, len(industryProfiles))
	for name := range industryProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
