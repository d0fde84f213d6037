package checks

import (
	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/taxmath"
)

// oldRegimeMarginalRate returns the marginal rate at the profile's
// as-is old-regime gross total income, the rate spec.md §4.3 requires
// every component-savings estimate to use.
func oldRegimeMarginalRate(profile model.SalaryProfile, age model.AgeCategory) float64 {
	breakdown := taxmath.OldRegimeTaxableIncome(profile, taxmath.OldRegimeOverrides{})
	slabs := constants.OldRegimeSlabs(age)
	return taxmath.MarginalRate(breakdown.GrossTotalIncome, slabs)
}

// componentSavings implements the gap × marginal_rate × (1 + cess_rate)
// formula every deduction-based check uses (spec.md §4.3).
func componentSavings(gap int, marginal float64) int {
	if gap <= 0 {
		return 0
	}
	return roundHalfAwayFromZero(float64(gap) * marginal * (1 + constants.CessRate))
}

func roundHalfAwayFromZero(x float64) int {
	return taxmath.RoundHalfAwayFromZero(x)
}
