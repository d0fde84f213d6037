package taxmath

import (
	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// Apply87ARebate implements the Section 87A cliff (spec.md §4.2): if
// taxableIncome is at or below the ceiling for (regime, fy), subtract
// min(tax, maxRebate); otherwise the tax is unchanged. A missing
// (fy, regime) entry yields the zero-value rule, which correctly
// produces zero rebate.
func Apply87ARebate(tax int, taxableIncome int, regime model.Regime, fy model.FinancialYear) int {
	rule := constants.Rebate87A(fy, regime)
	if rule.Ceiling == 0 && rule.MaxRebate == 0 {
		return tax
	}
	if taxableIncome > rule.Ceiling {
		return tax
	}
	rebate := tax
	if rebate > rule.MaxRebate {
		rebate = rule.MaxRebate
	}
	return tax - rebate
}

// Rebate87AAmount returns the amount of rebate actually subtracted —
// useful for breakdown reporting without re-deriving it from the
// before/after difference at every call site.
func Rebate87AAmount(tax int, taxableIncome int, regime model.Regime, fy model.FinancialYear) int {
	return tax - Apply87ARebate(tax, taxableIncome, regime, fy)
}
