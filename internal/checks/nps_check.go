package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// NPSCheck identifies the Section 80CCD(1B) gap — an additional ₹50,000
// deduction above the 80C limit, available only under the old regime
// (spec.md §4.3.6).
type NPSCheck struct{}

func (NPSCheck) ID() string   { return "nps_check" }
func (NPSCheck) Name() string { return "NPS Tax Benefit (80CCD(1B))" }

func (NPSCheck) Run(in Input) model.Finding {
	p := in.Profile
	age := in.Options.AgeCategory()

	current := p.Deduction80CCD1B
	gap := constants.Limit80CCD1B - current
	if gap < 0 {
		gap = 0
	}

	if gap <= 0 {
		return model.Finding{
			CheckID:    "nps_check",
			CheckName:  "NPS Tax Benefit (80CCD(1B))",
			Status:     model.Optimized,
			Finding:    fmt.Sprintf("NPS 80CCD(1B) fully utilized at ₹%d", current),
			Savings:    0,
			Action:     "No action needed",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"current_nps_1b": current,
				"limit_1b":       constants.Limit80CCD1B,
				"gap":            0,
			},
		}
	}

	marginal := oldRegimeMarginalRate(p, age)
	taxSaved := componentSavings(gap, marginal)

	return model.Finding{
		CheckID:   "nps_check",
		CheckName: "NPS Tax Benefit (80CCD(1B))",
		Status:    model.Opportunity,
		Finding: fmt.Sprintf(
			"₹%d NPS contribution saves ₹%d in tax (additional to 80C)", gap, taxSaved,
		),
		Savings: taxSaved,
		Action: fmt.Sprintf(
			"Open NPS Tier 1 account and invest ₹%d. This is ABOVE the ₹1.5L 80C limit", gap,
		),
		Deadline:   fmt.Sprintf("March 31 (for FY %s deduction)", p.FinancialYear),
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"Section 80CCD(1B) provides an additional ₹%d deduction over the 80C limit. "+
				"At your marginal rate, this saves ₹%d immediately. The trade-off: NPS is "+
				"locked until age 60, but the tax saving is immediate.",
			constants.Limit80CCD1B, taxSaved,
		),
		Details: map[string]any{
			"current_nps_1b":      current,
			"limit_1b":            constants.Limit80CCD1B,
			"gap":                 gap,
			"marginal_rate":       marginal,
			"tax_saved_component": taxSaved,
			"note":                "Locked until age 60. Tax saving is immediate, but money is illiquid",
		},
	}
}
