package metrics

import (
	"math"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/pkg/constants"
	"github.com/iwvelando/saas-metrics/pkg/mathutil"
)

// Calculate derives the full metrics record from one month of inputs. It is a
// total function: no side effects, no I/O, deterministic, and never NaN or
// Infinity by construction. Every denominator that can legitimately be zero
// passes through mathutil.Guard, which substitutes 1 rather than erroring;
// downstream display code depends on every field always being finite.
//
// Evaluation order is fixed (ARR/growth, retention, pipeline, efficiency,
// financial) so repeated calls are bit-identical.
func Calculate(in config.Inputs) CalculatedMetrics {
	var m CalculatedMetrics

	// ARR & growth. BeginningARR arrives in $M and is normalized to $K for
	// additive combination with the $K movement flows.
	beginningARRK := in.BeginningARR * constants.ThousandsPerMillion
	m.NewBookings = in.NewCustomersAdded * in.AvgDealSize
	m.NetNewARR = m.NewBookings + in.ExpansionARR - in.ChurnedARR
	endingARRK := beginningARRK + m.NetNewARR
	m.EndingARR = endingARRK / constants.ThousandsPerMillion
	m.MRR = endingARRK / constants.MonthsPerYear / constants.ThousandsPerMillion
	m.ARRGrowthRateMonthly = m.NetNewARR / mathutil.Guard(beginningARRK) * constants.PercentageMultiplier
	m.AnnualizedGrowthRate = (math.Pow(1+m.ARRGrowthRateMonthly/constants.PercentageMultiplier, constants.MonthsPerYear) - 1) * constants.PercentageMultiplier

	// Retention. Annualized GRR/NRR reuse the geometric ^12 convention even
	// though they are ratios, not growth deltas; moderately poor monthly
	// retention compounds to near-zero annualized figures on purpose.
	m.GRR = (beginningARRK - in.ChurnedARR) / mathutil.Guard(beginningARRK) * constants.PercentageMultiplier
	m.NRR = (beginningARRK - in.ChurnedARR + in.ExpansionARR) / mathutil.Guard(beginningARRK) * constants.PercentageMultiplier
	m.AnnualizedGRR = math.Pow(m.GRR/constants.PercentageMultiplier, constants.MonthsPerYear) * constants.PercentageMultiplier
	m.AnnualizedNRR = math.Pow(m.NRR/constants.PercentageMultiplier, constants.MonthsPerYear) * constants.PercentageMultiplier
	m.LogoChurnRate = in.CustomersChurned / mathutil.Guard(in.TotalCustomers) * constants.PercentageMultiplier
	m.EndingCustomerCount = in.TotalCustomers - in.CustomersChurned + in.NewCustomersAdded

	// Pipeline. Stage counts round to whole deals.
	m.SQLsGenerated = math.Round(in.MQLsGenerated * in.MQLToSQLConversion / constants.PercentageMultiplier)
	m.OpportunitiesCreated = math.Round(m.SQLsGenerated * in.SQLToOppConversion / constants.PercentageMultiplier)
	m.DealsClosedWon = math.Round(m.OpportunitiesCreated * in.WinRate / constants.PercentageMultiplier)
	m.PipelineGenerated = m.OpportunitiesCreated * in.AvgDealSize
	m.PipelineConversion = m.DealsClosedWon / mathutil.Guard(in.MQLsGenerated) * constants.PercentageMultiplier
	m.PipelineVelocity = (m.OpportunitiesCreated * in.AvgDealSize * constants.DollarsPerThousand * in.WinRate / constants.PercentageMultiplier) /
		mathutil.Guard(in.SalesCycle*constants.DaysPerMonth)

	// Marketing & sales efficiency. ARPA uses beginning ARR, not ending; a
	// deliberate simplification carried over from the source model.
	m.ARPA = in.BeginningARR * constants.DollarsPerMillion / mathutil.Guard(in.TotalCustomers) / constants.MonthsPerYear
	m.CACBlended = in.TotalSalesMarketing / mathutil.Guard(in.NewCustomersAdded)
	m.CACPaidOnly = (in.PaidSearchSpend + in.PaidSocialSpend) / mathutil.Guard(in.NewCustomersAdded)
	m.LTV = m.ARPA * in.AvgCustomerLifetime
	// CAC is carried in $K and rescaled to raw $ only at the point of
	// comparison against $-scale LTV and ARPA.
	m.LTVCACRatio = m.LTV / mathutil.Guard(m.CACBlended*constants.DollarsPerThousand)
	m.GrossMargin = constants.PercentageMultiplier - in.COGSPercent
	m.CACPaybackPeriod = (m.CACBlended * constants.DollarsPerThousand) /
		mathutil.Guard(m.ARPA*m.GrossMargin/constants.PercentageMultiplier)

	marketingSpendDollars := in.MarketingSpend * constants.DollarsPerThousand
	m.CostPerLead = marketingSpendDollars / mathutil.Guard(in.LeadsGenerated)
	m.CostPerMQL = marketingSpendDollars / mathutil.Guard(in.MQLsGenerated)
	m.CostPerSQL = marketingSpendDollars / mathutil.Guard(m.SQLsGenerated)
	m.CostPerOpp = marketingSpendDollars / mathutil.Guard(m.OpportunitiesCreated)
	m.CostPerWon = marketingSpendDollars / mathutil.Guard(m.DealsClosedWon)

	paidSpend := in.PaidSearchSpend + in.PaidSocialSpend
	paidLeads := in.PaidSearchLeads + in.PaidSocialLeads
	m.CPM = paidSpend / mathutil.Guard(in.PaidImpressions) * constants.DollarsPerThousand
	m.CPC = paidSpend * constants.DollarsPerThousand / mathutil.Guard(in.PaidClicks)
	m.CTR = in.PaidClicks / mathutil.Guard(in.PaidImpressions) * constants.PercentageMultiplier
	m.ClickToLeadRate = paidLeads / mathutil.Guard(in.PaidClicks) * constants.PercentageMultiplier
	m.LeadToMQLRate = in.MQLsGenerated / mathutil.Guard(in.LeadsGenerated) * constants.PercentageMultiplier

	m.MagicNumber = m.NetNewARR / mathutil.Guard(in.TotalSalesMarketing)
	m.PaybackPeriodSM = m.CACBlended / mathutil.Guard(m.NetNewARR/mathutil.Guard(in.NewCustomersAdded))

	// Financial performance. MRR is restated in $K for combination with the
	// $K opex lines.
	mrrK := m.MRR * constants.ThousandsPerMillion
	m.GrossProfit = mrrK * m.GrossMargin / constants.PercentageMultiplier
	m.TotalOpEx = in.TotalSalesMarketing + in.RDSpend + in.GASpend
	m.EBITDA = m.GrossProfit - m.TotalOpEx
	m.EBITDAMargin = m.EBITDA / mathutil.Guard(mrrK) * constants.PercentageMultiplier
	m.RuleOf40 = m.AnnualizedGrowthRate + m.EBITDAMargin
	m.SaaSQuickRatio = (m.NewBookings + in.ExpansionARR) / mathutil.Guard(in.ChurnedARR)
	// Burn multiple is zero when profitable, not undefined.
	if m.EBITDA < 0 {
		m.BurnMultiple = math.Abs(m.EBITDA) / mathutil.Guard(m.NetNewARR)
	} else {
		m.BurnMultiple = 0
	}

	return m
}
