package taxmath

import "github.com/spiffler33/taxhawk/internal/constants"

// Surcharge computes the surcharge on baseTaxAfterRebate with marginal
// relief (spec.md §4.2). Marginal relief guarantees that crossing a
// surcharge threshold by one rupee can never increase total liability
// (pre-cess) by more than that one rupee: the raw slab-rate surcharge is
// capped so that (base_tax + surcharge) never exceeds
// (tax_at_threshold + surcharge_at_threshold) + the excess income above
// the threshold.
//
// Per spec.md §9's Open Question, tax_at_threshold is computed from the
// *pre-rebate* income-tax slab schedule even though it is compared
// against the *post-rebate* base_tax — this looks asymmetric but is the
// behavior the reference fixtures require, and is preserved here rather
// than "fixed".
func Surcharge(taxableIncome int, baseTaxAfterRebate int, surchargeSlabs, incomeTaxSlabs []constants.Slab) int {
	idx := -1
	rate := 0.0
	for i, slab := range surchargeSlabs {
		if taxableIncome <= slab.UpperLimit {
			idx = i
			rate = slab.Rate
			break
		}
	}
	if idx <= 0 || rate == 0 {
		return 0
	}

	prevThreshold := surchargeSlabs[idx-1].UpperLimit
	prevRate := surchargeSlabs[idx-1].Rate

	rawSurcharge := float64(baseTaxAfterRebate) * rate
	taxAtThreshold := TaxOnSlabs(prevThreshold, incomeTaxSlabs)
	surchargeAtThreshold := float64(taxAtThreshold) * prevRate
	maxTotal := float64(taxAtThreshold) + surchargeAtThreshold + float64(taxableIncome-prevThreshold)

	if float64(baseTaxAfterRebate)+rawSurcharge > maxTotal {
		relieved := maxTotal - float64(baseTaxAfterRebate)
		if relieved < 0 {
			relieved = 0
		}
		return roundHalfAwayFromZero(relieved)
	}
	return roundHalfAwayFromZero(rawSurcharge)
}
