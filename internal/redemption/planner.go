// Package redemption implements the LTCG redemption planner of
// spec.md §4.3.8: an auxiliary pure function (not one of the seven
// checks) comparing the tax cost of realizing planned long-term capital
// gains in one financial year versus splitting the sale across two.
package redemption

import "github.com/spiffler33/taxhawk/internal/taxmath"

const effectiveLTCGRate = 0.125 * 1.04 // 0.13, per spec.md §4.3.8

// Input bundles a planned LTCG redemption against the exemption
// remaining in the current and next financial year.
type Input struct {
	PlannedLTCG        int
	ExemptionRemaining int
	ExemptionNextFY    int
}

// Result carries both scenarios and the split-vs-single recommendation.
type Result struct {
	PlannedLTCG      int
	OneFYTax         int
	OneFYTaxable     int
	SplitFY1Taxable  int
	SplitFY2Taxable  int
	SplitTotalTax    int
	SplitBeneficial  bool
	SplitSavings     int
	OneFYEffectiveRate  float64
	SplitEffectiveRate  float64
}

func clampNonNegative(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

// ComputeRedemptionTax implements the one-FY vs split-FY comparison of
// spec.md §4.3.8.
func ComputeRedemptionTax(in Input) Result {
	planned := clampNonNegative(in.PlannedLTCG)
	exemptionRemaining := clampNonNegative(in.ExemptionRemaining)
	exemptionNextFY := clampNonNegative(in.ExemptionNextFY)

	oneFYTaxable := clampNonNegative(planned - exemptionRemaining)
	oneFYTax := taxmath.RoundHalfAwayFromZero(float64(oneFYTaxable) * effectiveLTCGRate)

	sellFY1 := planned
	if exemptionRemaining < sellFY1 {
		sellFY1 = exemptionRemaining
	}
	sellFY2 := planned - sellFY1
	fy2Taxable := clampNonNegative(sellFY2 - exemptionNextFY)
	fy2Tax := taxmath.RoundHalfAwayFromZero(float64(fy2Taxable) * effectiveLTCGRate)
	splitTotal := fy2Tax

	splitSavings := oneFYTax - splitTotal
	beneficial := splitSavings > 0
	if !beneficial {
		splitSavings = 0
	}

	var oneFYRate, splitRate float64
	if planned > 0 {
		oneFYRate = float64(oneFYTax) / float64(planned)
		splitRate = float64(splitTotal) / float64(planned)
	}

	return Result{
		PlannedLTCG:        planned,
		OneFYTax:           oneFYTax,
		OneFYTaxable:       oneFYTaxable,
		SplitFY1Taxable:    sellFY1,
		SplitFY2Taxable:    fy2Taxable,
		SplitTotalTax:      splitTotal,
		SplitBeneficial:    beneficial,
		SplitSavings:       splitSavings,
		OneFYEffectiveRate: oneFYRate,
		SplitEffectiveRate: splitRate,
	}
}
