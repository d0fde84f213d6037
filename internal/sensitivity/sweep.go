// Package sensitivity sweeps a salary profile across a range of
// monthly-rent or CTC deltas and reports how the regime-arbitrage
// savings recommendation moves, using gonum/stat for the summary
// statistics (SPEC_FULL.md §11).
package sensitivity

import (
	"gonum.org/v1/gonum/stat"

	"github.com/spiffler33/taxhawk/internal/checks"
	"github.com/spiffler33/taxhawk/internal/model"
)

// Point is one sample of the sweep: the delta applied and the resulting
// regime_arbitrage savings.
type Point struct {
	Delta   int
	Savings int
}

// Summary is the descriptive statistics of a sweep's savings curve.
type Summary struct {
	Points   []Point
	Mean     float64
	Variance float64
	StdDev   float64
}

// SweepMonthlyRent recomputes the regime-arbitrage finding at
// profile.MonthlyRent + delta for every delta in deltas, holding
// everything else fixed.
func SweepMonthlyRent(profile model.SalaryProfile, deltas []int) Summary {
	return sweep(profile, deltas, func(p *model.SalaryProfile, delta int) {
		p.MonthlyRent += delta
		if p.MonthlyRent < 0 {
			p.MonthlyRent = 0
		}
	})
}

// SweepGrossSalary recomputes the regime-arbitrage finding at
// profile.GrossSalary + delta for every delta in deltas — a "what if I
// got a raise of this size" sweep.
func SweepGrossSalary(profile model.SalaryProfile, deltas []int) Summary {
	return sweep(profile, deltas, func(p *model.SalaryProfile, delta int) {
		p.GrossSalary += delta
		if p.GrossSalary < 0 {
			p.GrossSalary = 0
		}
	})
}

func sweep(profile model.SalaryProfile, deltas []int, apply func(*model.SalaryProfile, int)) Summary {
	check := checks.RegimeArbitrageCheck{}
	points := make([]Point, len(deltas))
	values := make([]float64, len(deltas))

	for i, delta := range deltas {
		p := profile
		apply(&p, delta)
		finding := check.Run(checks.Input{Profile: p})
		points[i] = Point{Delta: delta, Savings: finding.Savings}
		values[i] = float64(finding.Savings)
	}

	mean, variance := stat.MeanVariance(values, nil)
	return Summary{
		Points:   points,
		Mean:     mean,
		Variance: variance,
		StdDev:   stat.StdDev(values, nil),
	}
}
