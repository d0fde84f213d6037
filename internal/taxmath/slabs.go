package taxmath

import "github.com/spiffler33/taxhawk/internal/constants"

// TaxOnSlabs applies the progressive formula of spec.md §4.2: for each
// slab in order, the portion of income strictly above the previous
// slab's upper limit, up to this slab's upper limit, is taxed at this
// slab's rate. A non-positive income yields zero. The running total is
// accumulated as a float and materialized to an integer rupee amount
// only once, at the end — the slab boundaries used throughout this
// engine always land on exact rupee amounts so this never introduces
// drift, but it keeps the accumulation itself free of intermediate
// rounding per the "rational, rounding deferred" language in spec.md
// §4.2.
func TaxOnSlabs(taxableIncome int, slabs []constants.Slab) int {
	if taxableIncome <= 0 {
		return 0
	}

	var tax float64
	prevUpper := 0
	for _, slab := range slabs {
		if taxableIncome <= prevUpper {
			break
		}
		upper := slab.UpperLimit
		taxableInSlab := taxableIncome
		if taxableIncome > upper {
			taxableInSlab = upper
		}
		if amount := taxableInSlab - prevUpper; amount > 0 {
			tax += float64(amount) * slab.Rate
		}
		prevUpper = upper
		if taxableIncome <= upper {
			break
		}
	}
	return roundHalfAwayFromZero(tax)
}

// ApplyCess returns round(tax * 4%), applied to the sum of
// tax-after-rebate and surcharge (spec.md §4.2).
func ApplyCess(tax int) int {
	return roundHalfAwayFromZero(float64(tax) * constants.CessRate)
}

// MarginalRate returns the rate of the slab containing taxableIncome —
// the rate of the last (open-ended) slab if income exceeds every finite
// threshold. This is used only to estimate deduction-driven savings
// (spec.md §4.3), never to compute final tax liability.
func MarginalRate(taxableIncome int, slabs []constants.Slab) float64 {
	for _, slab := range slabs {
		if taxableIncome <= slab.UpperLimit {
			return slab.Rate
		}
	}
	return slabs[len(slabs)-1].Rate
}
