package constants

import "github.com/spiffler33/taxhawk/internal/model"

// CessRate is the flat 4% health & education cess on (tax + surcharge).
const CessRate = 0.04

// Flat deduction/exemption limits (spec.md §4.1), unaffected by
// financial year within this engine's scope.
const (
	Limit80C             = 150_000
	Limit80CCD1B         = 50_000
	Limit80DSelfBelow60  = 25_000
	Limit80DSelfSenior   = 50_000
	Limit80DParentsBelow = 25_000
	Limit80DParentsSenior = 50_000
	Limit24B             = 200_000
	LTCGExemption        = 125_000
	LTCGRate             = 0.125
	STCGRate             = 0.20
)

// RebateRule is a Section 87A cliff: if taxable income is at or below
// Ceiling, the rebate is min(tax, MaxRebate); above it, nothing.
type RebateRule struct {
	Ceiling   int
	MaxRebate int
}

var standardDeduction = map[model.FinancialYear]map[model.Regime]int{
	model.FY2024_25: {model.RegimeOld: 50_000, model.RegimeNew: 75_000},
	model.FY2025_26: {model.RegimeOld: 75_000, model.RegimeNew: 75_000},
}

var rebate87A = map[model.FinancialYear]map[model.Regime]RebateRule{
	model.FY2024_25: {
		model.RegimeNew: {Ceiling: 700_000, MaxRebate: 25_000},
		model.RegimeOld: {Ceiling: 500_000, MaxRebate: 12_500},
	},
	model.FY2025_26: {
		model.RegimeNew: {Ceiling: 1_200_000, MaxRebate: 60_000},
		model.RegimeOld: {Ceiling: 500_000, MaxRebate: 12_500},
	},
}

// StandardDeduction returns the salary-head standard deduction for the
// given financial year and regime.
func StandardDeduction(fy model.FinancialYear, regime model.Regime) int {
	return standardDeduction[resolveFY(fy)][regime]
}

// Rebate87A returns the Section 87A rebate rule for the given financial
// year and regime. The zero value (Ceiling=0, MaxRebate=0) is returned
// for any (fy, regime) combination with no entry, which correctly
// yields zero rebate everywhere it is applied.
func Rebate87A(fy model.FinancialYear, regime model.Regime) RebateRule {
	return rebate87A[resolveFY(fy)][regime]
}

// Limit80DSelf returns the Section 80D self/family limit for the given
// age bracket.
func Limit80DSelf(senior bool) int {
	if senior {
		return Limit80DSelfSenior
	}
	return Limit80DSelfBelow60
}

// Limit80DParents returns the Section 80D parents' limit for the given
// age bracket.
func Limit80DParents(senior bool) int {
	if senior {
		return Limit80DParentsSenior
	}
	return Limit80DParentsBelow
}
