package config

// Inputs is one month of business activity for the calculator. The record is
// flat and immutable for the duration of one calculation; editing a field
// means constructing a new record.
//
// Units are deliberately NOT uniform and every engine formula depends on the
// convention below being respected exactly:
//
//	BeginningARR                    $M
//	ExpansionARR, ChurnedARR        $K
//	AvgDealSize                     $K
//	All spend fields                $K
//	Conversion rates, percentages   0-100
//	SalesCycle, AvgCustomerLifetime months
//	Counts (customers, funnel, ad)  raw
type Inputs struct {
	// Starting position
	BeginningARR   float64 `json:"beginningARR" yaml:"beginningARR" mapstructure:"beginningARR"`
	TotalCustomers float64 `json:"totalCustomers" yaml:"totalCustomers" mapstructure:"totalCustomers"`

	// Monthly movement
	ExpansionARR      float64 `json:"expansionARR" yaml:"expansionARR" mapstructure:"expansionARR"`
	ChurnedARR        float64 `json:"churnedARR" yaml:"churnedARR" mapstructure:"churnedARR"`
	CustomersChurned  float64 `json:"customersChurned" yaml:"customersChurned" mapstructure:"customersChurned"`
	NewCustomersAdded float64 `json:"newCustomersAdded" yaml:"newCustomersAdded" mapstructure:"newCustomersAdded"`

	// Funnel
	LeadsGenerated     float64 `json:"leadsGenerated" yaml:"leadsGenerated" mapstructure:"leadsGenerated"`
	MQLsGenerated      float64 `json:"mqlsGenerated" yaml:"mqlsGenerated" mapstructure:"mqlsGenerated"`
	MQLToSQLConversion float64 `json:"mqlToSQLConversion" yaml:"mqlToSQLConversion" mapstructure:"mqlToSQLConversion"`
	SQLToOppConversion float64 `json:"sqlToOppConversion" yaml:"sqlToOppConversion" mapstructure:"sqlToOppConversion"`
	WinRate            float64 `json:"winRate" yaml:"winRate" mapstructure:"winRate"`
	AvgDealSize        float64 `json:"avgDealSize" yaml:"avgDealSize" mapstructure:"avgDealSize"`
	SalesCycle         float64 `json:"salesCycle" yaml:"salesCycle" mapstructure:"salesCycle"`

	// Channel spend and leads
	PaidSearchSpend   float64 `json:"paidSearchSpend" yaml:"paidSearchSpend" mapstructure:"paidSearchSpend"`
	PaidSearchLeads   float64 `json:"paidSearchLeads" yaml:"paidSearchLeads" mapstructure:"paidSearchLeads"`
	PaidSocialSpend   float64 `json:"paidSocialSpend" yaml:"paidSocialSpend" mapstructure:"paidSocialSpend"`
	PaidSocialLeads   float64 `json:"paidSocialLeads" yaml:"paidSocialLeads" mapstructure:"paidSocialLeads"`
	EventsSpend       float64 `json:"eventsSpend" yaml:"eventsSpend" mapstructure:"eventsSpend"`
	EventsLeads       float64 `json:"eventsLeads" yaml:"eventsLeads" mapstructure:"eventsLeads"`
	ContentSpend      float64 `json:"contentSpend" yaml:"contentSpend" mapstructure:"contentSpend"`
	ContentLeads      float64 `json:"contentLeads" yaml:"contentLeads" mapstructure:"contentLeads"`
	PartnershipsSpend float64 `json:"partnershipsSpend" yaml:"partnershipsSpend" mapstructure:"partnershipsSpend"`
	PartnershipsLeads float64 `json:"partnershipsLeads" yaml:"partnershipsLeads" mapstructure:"partnershipsLeads"`

	// ABM
	TargetAccounts  float64 `json:"targetAccounts" yaml:"targetAccounts" mapstructure:"targetAccounts"`
	EngagedAccounts float64 `json:"engagedAccounts" yaml:"engagedAccounts" mapstructure:"engagedAccounts"`
	ABMSpend        float64 `json:"abmSpend" yaml:"abmSpend" mapstructure:"abmSpend"`

	// Paid media detail
	PaidImpressions float64 `json:"paidImpressions" yaml:"paidImpressions" mapstructure:"paidImpressions"`
	PaidClicks      float64 `json:"paidClicks" yaml:"paidClicks" mapstructure:"paidClicks"`

	// Operating expenses
	TotalSalesMarketing float64 `json:"totalSalesMarketing" yaml:"totalSalesMarketing" mapstructure:"totalSalesMarketing"`
	MarketingSpend      float64 `json:"marketingSpend" yaml:"marketingSpend" mapstructure:"marketingSpend"`
	RDSpend             float64 `json:"rdSpend" yaml:"rdSpend" mapstructure:"rdSpend"`
	GASpend             float64 `json:"gaSpend" yaml:"gaSpend" mapstructure:"gaSpend"`

	// Ratios
	COGSPercent         float64 `json:"cogsPercent" yaml:"cogsPercent" mapstructure:"cogsPercent"`
	AvgCustomerLifetime float64 `json:"avgCustomerLifetime" yaml:"avgCustomerLifetime" mapstructure:"avgCustomerLifetime"`
}
