package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/taxmath"
)

// RegimeArbitrageCheck is the highest-impact check: it compares the
// new-regime tax against a fully-optimized old-regime scenario
// (spec.md §4.3.1).
type RegimeArbitrageCheck struct{}

func (RegimeArbitrageCheck) ID() string   { return "regime_arbitrage" }
func (RegimeArbitrageCheck) Name() string { return "Tax Regime Optimization" }

func (RegimeArbitrageCheck) Run(in Input) model.Finding {
	p := in.Profile
	fy := p.FinancialYear
	age := in.Options.AgeCategory()

	newTaxable := taxmath.NewRegimeTaxableIncome(p)
	newResult := taxmath.NewRegimeTax(newTaxable, fy)

	optimalHRA := 0
	if p.HRAReceived > 0 && p.MonthlyRent > 0 {
		optimalHRA = taxmath.HRAExemption(p.BasicSalary, p.HRAReceived, p.RentPaidAnnual(), p.IsMetro())
	}

	optimal80C := constants.Limit80C

	selfLimit := constants.Limit80DSelf(in.Options.SelfSenior)
	parentsLimit := constants.Limit80DParents(in.Options.ParentsSenior)
	target := parentsLimit
	if in.Options.SelfSenior {
		target = selfLimit + parentsLimit
	}
	optimal80D := p.Deduction80D
	if target > optimal80D {
		optimal80D = target
	}

	optimalNPS1B := constants.Limit80CCD1B

	optimal24B := p.Deduction24B
	if optimal24B > constants.Limit24B {
		optimal24B = constants.Limit24B
	}

	profileFor24B := p
	profileFor24B.Deduction24B = optimal24B

	oldBreakdown := taxmath.OldRegimeTaxableIncome(profileFor24B, taxmath.OldRegimeOverrides{
		HRAExemption: &optimalHRA,
		Total80C:     &optimal80C,
		Total80D:     &optimal80D,
		Total80CCD1B: &optimalNPS1B,
	})
	oldResult := taxmath.OldRegimeTax(oldBreakdown.TaxableIncome, fy, age)

	savings := newResult.TotalTax - oldResult.TotalTax
	if savings < 0 {
		savings = 0
	}
	recommended := "new"
	if savings > 0 {
		recommended = "old"
	}

	deductionsNeeded := map[string]any{}
	if optimalHRA > p.HRAExemption {
		deductionsNeeded["hra_exemption"] = optimalHRA
	}
	current80C := p.Deduction80C + p.Deduction80CCC + p.Deduction80CCD1
	if gap := constants.Limit80C - current80C; gap > 0 {
		deductionsNeeded["section_80c"] = optimal80C
		deductionsNeeded["section_80c_gap"] = gap
	}
	if optimal80D > p.Deduction80D {
		deductionsNeeded["section_80d"] = optimal80D
	}
	if optimalNPS1B > p.Deduction80CCD1B {
		deductionsNeeded["section_80ccd_1b"] = optimalNPS1B
	}

	details := map[string]any{
		"new_regime_tax":      newResult.TotalTax,
		"new_regime_taxable":  newTaxable,
		"old_regime_tax":      oldResult.TotalTax,
		"old_regime_taxable":  oldBreakdown.TaxableIncome,
		"recommended_regime":  recommended,
		"old_regime_breakdown": oldBreakdown,
		"new_regime_tax_breakdown": newResult,
		"old_regime_tax_breakdown": oldResult,
	}

	if savings > 0 {
		details["deductions_needed"] = deductionsNeeded
		return model.Finding{
			CheckID:   "regime_arbitrage",
			CheckName: "Tax Regime Optimization",
			Status:    model.Opportunity,
			Finding:   fmt.Sprintf("Switching to old regime with full deductions saves ₹%d", savings),
			Savings:   savings,
			Action: fmt.Sprintf(
				"File ITR under old tax regime for FY %s. Invest in ELSS/PPF for 80C, "+
					"get parents' health insurance for 80D, and open NPS for 80CCD(1B) before March 31",
				fy,
			),
			Deadline:   "July 31 (ITR filing) — but investments needed before March 31",
			Confidence: model.Definite,
			Explanation: fmt.Sprintf(
				"Your employer applied the new regime (default), resulting in tax of ₹%d. "+
					"Under the old regime with optimized deductions (HRA ₹%d + 80C ₹%d + "+
					"80D ₹%d + NPS ₹%d), your tax drops to ₹%d.",
				newResult.TotalTax, optimalHRA, optimal80C, optimal80D, optimalNPS1B, oldResult.TotalTax,
			),
			Details: details,
		}
	}

	return model.Finding{
		CheckID:   "regime_arbitrage",
		CheckName: "Tax Regime Optimization",
		Status:    model.Optimized,
		Finding:   fmt.Sprintf("New regime is already optimal (saves ₹%d vs old)", oldResult.TotalTax-newResult.TotalTax),
		Savings:   0,
		Action:    "No action needed — continue with new regime",
		Deadline:  "N/A",
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"New regime tax: ₹%d. Old regime tax (even with optimized deductions): ₹%d. "+
				"New regime is better by ₹%d.",
			newResult.TotalTax, oldResult.TotalTax, oldResult.TotalTax-newResult.TotalTax,
		),
		Details: details,
	}
}
