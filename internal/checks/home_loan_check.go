package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// HomeLoanCheck is display-only, mirroring HRAOptimizerCheck: it always
// reports savings=0 on Opportunity since the benefit of Section 24(b) is
// already folded into RegimeArbitrageCheck's optimized old-regime
// scenario (spec.md §4.3.7).
type HomeLoanCheck struct{}

func (HomeLoanCheck) ID() string   { return "home_loan_check" }
func (HomeLoanCheck) Name() string { return "Home Loan Interest (Section 24b)" }

func (HomeLoanCheck) Run(in Input) model.Finding {
	p := in.Profile
	age := in.Options.AgeCategory()

	if p.Deduction24B == 0 {
		return model.Finding{
			CheckID:    "home_loan_check",
			CheckName:  "Home Loan Interest (Section 24b)",
			Status:     model.NotApplicable,
			Finding:    "No home loan interest reported",
			Savings:    0,
			Action:     "N/A",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details:    map[string]any{"deduction_24b": 0},
		}
	}

	capped := p.Deduction24B
	if capped > constants.Limit24B {
		capped = constants.Limit24B
	}
	marginal := oldRegimeMarginalRate(p, age)
	displaySaving := componentSavings(capped, marginal)

	finding := fmt.Sprintf("₹%d home loan interest claimed under Section 24(b)", capped)
	if p.Deduction24B > constants.Limit24B {
		finding = fmt.Sprintf(
			"₹%d home loan interest reported, but Section 24(b) caps the self-occupied "+
				"deduction at ₹%d", p.Deduction24B, constants.Limit24B,
		)
	}

	return model.Finding{
		CheckID:   "home_loan_check",
		CheckName: "Home Loan Interest (Section 24b)",
		Status:    model.Opportunity,
		Finding:   finding,
		Savings:   0,
		Action:    "Ensure the loan interest certificate is filed; the benefit is captured in the regime switch recommendation",
		Deadline:  "Include in ITR filing by July 31",
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"Section 24(b) allows up to ₹%d of home loan interest as a deduction against "+
				"a self-occupied property, available only under the old regime. At your marginal "+
				"rate this component is worth ₹%d, already counted inside the regime arbitrage savings.",
			constants.Limit24B, displaySaving,
		),
		Details: map[string]any{
			"deduction_24b":   p.Deduction24B,
			"capped":          capped,
			"limit":           constants.Limit24B,
			"marginal_rate":   marginal,
			"display_saving":  displaySaving,
			"note":            "Savings included in regime arbitrage check",
		},
	}
}
