package taxmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

func TestTaxOnSlabs(t *testing.T) {
	slabs := constants.NewRegimeSlabs(model.FY2024_25)
	assert.Equal(t, 0, TaxOnSlabs(0, slabs))
	assert.Equal(t, 0, TaxOnSlabs(-50_000, slabs))
	assert.Equal(t, 0, TaxOnSlabs(300_000, slabs))
}

func TestApplyCess(t *testing.T) {
	assert.Equal(t, 4_361, ApplyCess(109_020))
}

func TestNewRegimeTax(t *testing.T) {
	result := NewRegimeTax(1_422_600, model.FY2024_25)
	assert.Equal(t, 129_501, result.TotalTax)
}

func TestOldRegimeTax(t *testing.T) {
	result := OldRegimeTax(982_600, model.FY2024_25, model.BelowSixty)
	assert.Equal(t, 113_381, result.TotalTax)
}

func TestApply87ARebateNewRegimeCliff(t *testing.T) {
	// Below the ceiling: full rebate up to the cap.
	after := Apply87ARebate(25_000, 700_000, model.RegimeNew, model.FY2024_25)
	assert.Equal(t, 0, after)

	// One rupee over the ceiling: no rebate at all (the cliff, not a taper).
	after = Apply87ARebate(25_100, 700_001, model.RegimeNew, model.FY2024_25)
	assert.Equal(t, 25_100, after)
}

func TestHRAExemptionMinOfThree(t *testing.T) {
	// Priya: basic=600,000, hra_received=300,000, rent_annual=300,000, metro.
	got := HRAExemption(600_000, 300_000, 300_000, true)
	// A=300,000 B=300,000-60,000=240,000 C=50%*600,000=300,000 -> min=240,000
	assert.Equal(t, 240_000, got)
}

func TestHRAExemptionFloorsAtZero(t *testing.T) {
	got := HRAExemption(600_000, 10_000, 0, false)
	assert.GreaterOrEqual(t, got, 0)
}

func TestSurchargeMarginalRelief(t *testing.T) {
	// S5: old_regime_tax(5,100,000, FY24-25) -> base 1,342,500, surcharge
	// 70,000 (not the raw 134,250), cess 56,500, total 1,469,000.
	result := OldRegimeTax(5_100_000, model.FY2024_25, model.BelowSixty)
	assert.Equal(t, 1_342_500, result.BaseTax)
	assert.Equal(t, 70_000, result.Surcharge)
	assert.Equal(t, 56_500, result.Cess)
	assert.Equal(t, 1_469_000, result.TotalTax)
}

func TestSurchargeCapNewRegime(t *testing.T) {
	// S6: surcharge never exceeds 25% of base tax under the new regime,
	// even at 6 crore income (no 37% band exists for the new regime).
	result := NewRegimeTax(60_000_000, model.FY2024_25)
	assert.LessOrEqual(t, float64(result.Surcharge), float64(result.BaseTax)*0.25+1)
}

func TestNewRegimeTaxableIncome(t *testing.T) {
	p := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_500_000,
		ProfessionalTax: 2_400,
		Deduction80CCD2: 0,
	}
	got := NewRegimeTaxableIncome(p)
	assert.Equal(t, 1_500_000-75_000-2_400, got)
}

func TestOldRegimeTaxableIncomePriyaAsIs(t *testing.T) {
	p := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_500_000,
		BasicSalary:     600_000,
		HRAReceived:     300_000,
		HRAExemption:    240_000,
		ProfessionalTax: 2_400,
		Deduction80C:    72_000,
	}
	breakdown := OldRegimeTaxableIncome(p, OldRegimeOverrides{})
	assert.Equal(t, 1_260_000, breakdown.NetSalary)
	assert.Equal(t, 1_207_600, breakdown.GrossTotalIncome)
	assert.Equal(t, 72_000, breakdown.Deduction80C)
	assert.Equal(t, 1_135_600, breakdown.TaxableIncome)
}

func TestOldRegimeTaxableIncomePriyaOptimized(t *testing.T) {
	p := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_500_000,
		BasicSalary:     600_000,
		HRAReceived:     300_000,
		HRAExemption:    240_000,
		ProfessionalTax: 2_400,
		Deduction80C:    72_000,
	}
	hra, c80, d80, nps := 240_000, 150_000, 25_000, 50_000
	breakdown := OldRegimeTaxableIncome(p, OldRegimeOverrides{
		HRAExemption: &hra,
		Total80C:     &c80,
		Total80D:     &d80,
		Total80CCD1B: &nps,
	})
	assert.Equal(t, 1_207_600, breakdown.GrossTotalIncome)
	assert.Equal(t, 225_000, breakdown.TotalChapterVIA)
	assert.Equal(t, 982_600, breakdown.TaxableIncome)
}
