// Package constants holds the immutable statutory lookup tables (L0):
// slabs, rebate thresholds, standard deductions, surcharge slabs, and
// the flat deduction/exemption limits used throughout internal/taxmath
// and internal/checks. Every table is keyed by a finite FinancialYear;
// an unrecognized year falls back to FY2024_25 (spec.md §9).
package constants

import "github.com/spiffler33/taxhawk/internal/model"

// Infinity stands in for the open-ended top slab. It is far larger than
// any realistic income (spec.md §4.4 bounds inputs at up to 10^9 rupees)
// so every finite comparison against it behaves as "always below".
const Infinity = 1 << 62

// Slab is one (upper_limit, rate) step of a progressive tax table. The
// last entry in any table has UpperLimit == Infinity.
type Slab struct {
	UpperLimit int
	Rate       float64
}

var newRegimeSlabsFY2024_25 = []Slab{
	{300_000, 0.00},
	{700_000, 0.05},
	{1_000_000, 0.10},
	{1_200_000, 0.15},
	{1_500_000, 0.20},
	{Infinity, 0.30},
}

var newRegimeSlabsFY2025_26 = []Slab{
	{400_000, 0.00},
	{800_000, 0.05},
	{1_200_000, 0.10},
	{1_600_000, 0.15},
	{2_000_000, 0.20},
	{2_400_000, 0.25},
	{Infinity, 0.30},
}

var oldRegimeSlabsBelowSixty = []Slab{
	{250_000, 0.00},
	{500_000, 0.05},
	{1_000_000, 0.20},
	{Infinity, 0.30},
}

var oldRegimeSlabsSenior = []Slab{
	{300_000, 0.00},
	{500_000, 0.05},
	{1_000_000, 0.20},
	{Infinity, 0.30},
}

var oldRegimeSlabsSuperSenior = []Slab{
	{500_000, 0.00},
	{1_000_000, 0.20},
	{Infinity, 0.30},
}

// resolveFY falls back to FY2024_25 for any year outside the finite set
// this engine knows about, per spec.md §9.
func resolveFY(fy model.FinancialYear) model.FinancialYear {
	if fy == model.FY2024_25 || fy == model.FY2025_26 {
		return fy
	}
	return model.FY2024_25
}

// NewRegimeSlabs returns the new-regime progressive slab table for fy.
func NewRegimeSlabs(fy model.FinancialYear) []Slab {
	switch resolveFY(fy) {
	case model.FY2025_26:
		return newRegimeSlabsFY2025_26
	default:
		return newRegimeSlabsFY2024_25
	}
}

// OldRegimeSlabs returns the old-regime progressive slab table for the
// given age category. The old-regime table does not vary by financial
// year in this engine's scope.
func OldRegimeSlabs(age model.AgeCategory) []Slab {
	switch age {
	case model.Senior:
		return oldRegimeSlabsSenior
	case model.SuperSenior:
		return oldRegimeSlabsSuperSenior
	default:
		return oldRegimeSlabsBelowSixty
	}
}

// SurchargeSlabsOld is the surcharge rate table for the old regime —
// uncapped at the top (37% above ₹5Cr).
var SurchargeSlabsOld = []Slab{
	{5_000_000, 0.00},
	{10_000_000, 0.10},
	{20_000_000, 0.15},
	{50_000_000, 0.25},
	{Infinity, 0.37},
}

// SurchargeSlabsNew is the surcharge rate table for the new regime —
// capped at 25% above ₹2Cr, never reaching the old regime's 37%.
var SurchargeSlabsNew = []Slab{
	{5_000_000, 0.00},
	{10_000_000, 0.10},
	{20_000_000, 0.15},
	{Infinity, 0.25},
}
