// Package estimator provides thin, heuristic boundary mappers that turn
// loosely-structured inputs (a CTC figure, a quantity/price range) into
// the strict SalaryProfile/Holdings shapes the rest of the engine
// consumes. Nothing here feeds TaxMath directly — callers take this
// package's output and pass it into the orchestrator like any other
// profile (SPEC_FULL.md §12).
package estimator

import "github.com/spiffler33/taxhawk/internal/model"

// CTCBreakdown is a conventional Indian CTC split: basic is usually
// 40-50% of CTC, HRA 40-50% of basic, the rest landing in special
// allowance after statutory employer contributions are carved out.
type CTCBreakdown struct {
	BasicPct   float64 // default 0.40
	HRAPct     float64 // default 0.50 of basic
	EmployerPF float64 // default 0.12 of basic, capped
}

// DefaultCTCBreakdown returns the conventional split used when the
// caller supplies no finer-grained percentages.
func DefaultCTCBreakdown() CTCBreakdown {
	return CTCBreakdown{BasicPct: 0.40, HRAPct: 0.50, EmployerPF: 0.12}
}

// EstimateSalaryProfile builds a SalaryProfile from a single annual CTC
// figure plus a handful of known facts the caller always has (financial
// year, city, monthly rent, regime). Every other field is a heuristic
// estimate — this is a convenience for exploring "what if my CTC were
// X", not a substitute for actual Form 16 figures.
func EstimateSalaryProfile(ctc int, fy model.FinancialYear, city string, monthlyRent int, regime model.Regime, breakdown CTCBreakdown) model.SalaryProfile {
	if breakdown == (CTCBreakdown{}) {
		breakdown = DefaultCTCBreakdown()
	}

	basic := int(float64(ctc) * breakdown.BasicPct)
	hra := int(float64(basic) * breakdown.HRAPct)
	employerPF := int(float64(basic) * breakdown.EmployerPF)
	if employerPF > 21_600 { // statutory PF wage ceiling heuristic (₹15,000/mo × 12% × 12)
		employerPF = 21_600
	}
	gross := ctc - employerPF
	special := gross - basic - hra
	if special < 0 {
		special = 0
		gross = basic + hra
	}

	return model.SalaryProfile{
		FinancialYear:           fy,
		GrossSalary:             gross,
		BasicSalary:             basic,
		HRAReceived:             hra,
		SpecialAllowance:        special,
		ProfessionalTax:         2_400,
		CurrentRegime:           regime,
		City:                    city,
		MonthlyRent:             monthlyRent,
		EPFEmployeeContribution: employerPF,
		Deduction80C:            employerPF,
	}
}
