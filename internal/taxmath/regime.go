package taxmath

import (
	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// TaxResult is the full breakdown of a regime tax computation, exposing
// every intermediate line item for transparency (SPEC_FULL.md §12).
type TaxResult struct {
	TaxableIncome int
	BaseTax       int
	Rebate87A     int
	AfterRebate   int
	Surcharge     int
	Cess          int
	TotalTax      int
}

// NewRegimeTax runs the new-regime pipeline of spec.md §4.2: base tax on
// slabs, Section 87A rebate, surcharge with marginal relief, then cess.
func NewRegimeTax(taxableIncome int, fy model.FinancialYear) TaxResult {
	slabs := constants.NewRegimeSlabs(fy)
	baseTax := TaxOnSlabs(taxableIncome, slabs)
	afterRebate := Apply87ARebate(baseTax, taxableIncome, model.RegimeNew, fy)
	surch := Surcharge(taxableIncome, afterRebate, constants.SurchargeSlabsNew, slabs)
	cess := ApplyCess(afterRebate + surch)
	return TaxResult{
		TaxableIncome: taxableIncome,
		BaseTax:       baseTax,
		Rebate87A:     baseTax - afterRebate,
		AfterRebate:   afterRebate,
		Surcharge:     surch,
		Cess:          cess,
		TotalTax:      afterRebate + surch + cess,
	}
}

// OldRegimeTax runs the old-regime pipeline with the slab table selected
// by age category.
func OldRegimeTax(taxableIncome int, fy model.FinancialYear, age model.AgeCategory) TaxResult {
	slabs := constants.OldRegimeSlabs(age)
	baseTax := TaxOnSlabs(taxableIncome, slabs)
	afterRebate := Apply87ARebate(baseTax, taxableIncome, model.RegimeOld, fy)
	surch := Surcharge(taxableIncome, afterRebate, constants.SurchargeSlabsOld, slabs)
	cess := ApplyCess(afterRebate + surch)
	return TaxResult{
		TaxableIncome: taxableIncome,
		BaseTax:       baseTax,
		Rebate87A:     baseTax - afterRebate,
		AfterRebate:   afterRebate,
		Surcharge:     surch,
		Cess:          cess,
		TotalTax:      afterRebate + surch + cess,
	}
}

// NewRegimeTaxableIncome implements spec.md §4.2: gross salary less the
// new-regime standard deduction, professional tax, and employer NPS
// contribution (80CCD(2), the only Chapter VI-A item the new regime
// allows), clamped at zero.
func NewRegimeTaxableIncome(profile model.SalaryProfile) int {
	taxable := profile.GrossSalary -
		constants.StandardDeduction(profile.FinancialYear, model.RegimeNew) -
		profile.ProfessionalTax -
		profile.Deduction80CCD2
	if taxable < 0 {
		return 0
	}
	return taxable
}

// OldRegimeOverrides lets a caller substitute an optimized value for one
// of the four overridable line items of the old-regime derivation,
// matching the override surface checks use when projecting an optimized
// scenario (spec.md §4.3.1). A nil field means "use the profile's own
// value".
type OldRegimeOverrides struct {
	HRAExemption   *int
	Total80C       *int
	Total80D       *int
	Total80CCD1B   *int
}

// OldRegimeTaxableIncomeBreakdown is the full line-item derivation of
// spec.md §4.2's old_regime_taxable_income pipeline.
type OldRegimeTaxableIncomeBreakdown struct {
	GrossSalary       int
	HRAExemption      int
	NetSalary         int
	StandardDeduction int
	ProfessionalTax   int
	GrossTotalIncome  int
	Deduction80C      int
	Deduction80D      int
	Deduction80CCD1B  int
	Deduction80CCD2   int
	Deduction24B      int
	OtherDeductions   int
	TotalChapterVIA   int
	TaxableIncome     int
}

// OldRegimeTaxableIncome implements the eight-step old-regime derivation
// of spec.md §4.2.
func OldRegimeTaxableIncome(profile model.SalaryProfile, overrides OldRegimeOverrides) OldRegimeTaxableIncomeBreakdown {
	hraExempt := profile.HRAExemption
	if overrides.HRAExemption != nil {
		hraExempt = *overrides.HRAExemption
	}

	netSalary := profile.GrossSalary - hraExempt - profile.LTAExemption - profile.OtherExemption

	grossTotalIncome := netSalary -
		constants.StandardDeduction(profile.FinancialYear, model.RegimeOld) -
		profile.ProfessionalTax

	total80C := profile.Deduction80C + profile.Deduction80CCC + profile.Deduction80CCD1
	if overrides.Total80C != nil {
		total80C = *overrides.Total80C
	} else if total80C > constants.Limit80C {
		total80C = constants.Limit80C
	}

	total80D := profile.Deduction80D
	if overrides.Total80D != nil {
		total80D = *overrides.Total80D
	}

	total80CCD1B := profile.Deduction80CCD1B
	if overrides.Total80CCD1B != nil {
		total80CCD1B = *overrides.Total80CCD1B
	}

	deduction24B := profile.Deduction24B
	if deduction24B > constants.Limit24B {
		deduction24B = constants.Limit24B
	}

	other := profile.Deduction80E + profile.Deduction80G + profile.Deduction80TTA + profile.OtherDeduction

	totalViaA := total80C + total80CCD1B + profile.Deduction80CCD2 + total80D + deduction24B + other

	taxable := grossTotalIncome - totalViaA
	if taxable < 0 {
		taxable = 0
	}

	return OldRegimeTaxableIncomeBreakdown{
		GrossSalary:       profile.GrossSalary,
		HRAExemption:      hraExempt,
		NetSalary:         netSalary,
		StandardDeduction: constants.StandardDeduction(profile.FinancialYear, model.RegimeOld),
		ProfessionalTax:   profile.ProfessionalTax,
		GrossTotalIncome:  grossTotalIncome,
		Deduction80C:      total80C,
		Deduction80D:      total80D,
		Deduction80CCD1B:  total80CCD1B,
		Deduction80CCD2:   profile.Deduction80CCD2,
		Deduction24B:      deduction24B,
		OtherDeductions:   other,
		TotalChapterVIA:   totalViaA,
		TaxableIncome:     taxable,
	}
}
