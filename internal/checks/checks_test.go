package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spiffler33/taxhawk/internal/model"
)

// priyaProfile reproduces the reference demo fixture (₹15L gross, Mumbai
// metro, FY 2024-25, new regime, only the ₹72K EPF claimed under 80C) used throughout
// the original test suite to pin exact rupee figures.
func priyaProfile() model.SalaryProfile {
	return model.SalaryProfile{
		FinancialYear:           model.FY2024_25,
		EmployeeName:            "Priya Sharma",
		GrossSalary:             1_500_000,
		BasicSalary:             600_000,
		HRAReceived:             300_000,
		ProfessionalTax:         2_400,
		CurrentRegime:           model.RegimeNew,
		City:                    "mumbai",
		MonthlyRent:             25_000,
		EPFEmployeeContribution: 72_000,
		Deduction80C:            72_000,
	}
}

func priyaHoldings() model.Holdings {
	return model.Holdings{
		Positions: []model.Holding{
			{SecurityName: "HDFC Bank Ltd", SecurityType: model.EquityShare, PurchaseDate: date(2022, 1, 15), PurchasePrice: 1400, Quantity: 50, CurrentPrice: 1530},
			{SecurityName: "Infosys Ltd", SecurityType: model.EquityShare, PurchaseDate: date(2022, 6, 1), PurchasePrice: 1400, Quantity: 40, CurrentPrice: 1660},
			{SecurityName: "Axis Bluechip Fund - Growth", SecurityType: model.EquityMF, PurchaseDate: date(2021, 11, 1), PurchasePrice: 40, Quantity: 2000, CurrentPrice: 50.25},
			{SecurityName: "Parag Parikh Flexi Cap Fund", SecurityType: model.EquityMF, PurchaseDate: date(2024, 8, 1), PurchasePrice: 65, Quantity: 500, CurrentPrice: 71.5},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fyEnd() time.Time { return date(2025, time.March, 31) }

func TestRegimeArbitrageCheckPriya(t *testing.T) {
	f := RegimeArbitrageCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 16_120, f.Savings)
	assert.Equal(t, "old", f.Details["recommended_regime"])
	assert.Equal(t, 129_501, f.Details["new_regime_tax"])
	assert.Equal(t, 113_381, f.Details["old_regime_tax"])
}

func TestSection80CCheckPriya(t *testing.T) {
	f := Section80CCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 24_336, f.Savings)
	assert.Equal(t, 78_000, f.Details["gap"])
}

func TestSection80DCheckPriya(t *testing.T) {
	f := Section80DCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 7_800, f.Savings)
	assert.Equal(t, 25_000, f.Details["recommended_premium"])
}

func TestHRAOptimizerCheckPriya(t *testing.T) {
	f := HRAOptimizerCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 0, f.Savings)
	assert.Equal(t, 240_000, f.Details["optimal_exemption"])
}

func TestNPSCheckPriya(t *testing.T) {
	f := NPSCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 15_600, f.Savings)
	assert.Equal(t, 50_000, f.Details["gap"])
}

func TestCapitalGainsCheckPriya(t *testing.T) {
	asOf := fyEnd()
	f := CapitalGainsCheck{}.Run(Input{
		Holdings: priyaHoldings(),
		Options:  model.Options{CGAsOf: &asOf},
	})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 4_862, f.Savings)
	harvest := f.Details["holdings_to_harvest"].([]string)
	assert.Len(t, harvest, 3)
	assert.Contains(t, harvest, "HDFC Bank Ltd")
	assert.Contains(t, harvest, "Infosys Ltd")
	assert.Contains(t, harvest, "Axis Bluechip Fund - Growth")
	assert.NotContains(t, harvest, "Parag Parikh Flexi Cap Fund")
}

func TestCapitalGainsCheckEmptyPortfolio(t *testing.T) {
	f := CapitalGainsCheck{}.Run(Input{})
	assert.Equal(t, model.NotApplicable, f.Status)
	assert.Equal(t, 0, f.Savings)
}

func TestHomeLoanCheckNotApplicableWithoutLoan(t *testing.T) {
	f := HomeLoanCheck{}.Run(Input{Profile: priyaProfile()})
	assert.Equal(t, model.NotApplicable, f.Status)
}

func TestHomeLoanCheckCapsAt200000(t *testing.T) {
	p := priyaProfile()
	p.Deduction24B = 280_000
	f := HomeLoanCheck{}.Run(Input{Profile: p})
	assert.Equal(t, model.Opportunity, f.Status)
	assert.Equal(t, 0, f.Savings)
	assert.Equal(t, 200_000, f.Details["capped"])
}

func TestRegistryRunAllSortsBySavingsDescending(t *testing.T) {
	asOf := fyEnd()
	reg := NewPopulatedRegistry(testLogger())
	findings := reg.RunAll(Input{
		Profile:  priyaProfile(),
		Holdings: priyaHoldings(),
		Options:  model.Options{CGAsOf: &asOf},
	})
	assert.Len(t, findings, 7)
	for i := 1; i < len(findings); i++ {
		assert.GreaterOrEqual(t, findings[i-1].Savings, findings[i].Savings)
	}
}
