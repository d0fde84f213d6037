package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// Section80CCheck identifies the gap between current 80C/80CCC/80CCD(1)
// usage and the ₹1.5L combined limit (spec.md §4.3.2).
type Section80CCheck struct{}

func (Section80CCheck) ID() string   { return "80c_gap" }
func (Section80CCheck) Name() string { return "Section 80C Gap" }

func (Section80CCheck) Run(in Input) model.Finding {
	p := in.Profile
	age := in.Options.AgeCategory()

	current := p.Deduction80C + p.Deduction80CCC + p.Deduction80CCD1
	if current > constants.Limit80C {
		current = constants.Limit80C
	}
	gap := constants.Limit80C - current

	if gap <= 0 {
		return model.Finding{
			CheckID:    "80c_gap",
			CheckName:  "Section 80C Gap",
			Status:     model.Optimized,
			Finding:    fmt.Sprintf("80C fully utilized at ₹%d", current),
			Savings:    0,
			Action:     "No action needed — 80C limit already maxed",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"epf_contribution":  p.EPFEmployeeContribution,
				"current_80c_total": current,
				"limit":             constants.Limit80C,
				"gap":               0,
			},
		}
	}

	marginal := oldRegimeMarginalRate(p, age)
	taxSaved := componentSavings(gap, marginal)

	return model.Finding{
		CheckID:   "80c_gap",
		CheckName: "Section 80C Gap",
		Status:    model.Opportunity,
		Finding: fmt.Sprintf(
			"₹%d gap in 80C limit. EPF covers ₹%d of ₹%dK",
			gap, p.EPFEmployeeContribution, constants.Limit80C/1000,
		),
		Savings: taxSaved,
		Action: fmt.Sprintf(
			"Invest ₹%d in ELSS mutual fund (e.g., Mirae Asset ELSS, Axis ELSS) before March 31",
			gap,
		),
		Deadline:   fmt.Sprintf("March 31 (for FY %s deduction)", p.FinancialYear),
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"Your EPF contribution of ₹%d covers only part of the ₹%d limit. "+
				"ELSS has the shortest lock-in (3 years) among 80C instruments and offers equity market returns.",
			p.EPFEmployeeContribution, constants.Limit80C,
		),
		Details: map[string]any{
			"epf_contribution":        p.EPFEmployeeContribution,
			"current_80c_total":       current,
			"limit":                   constants.Limit80C,
			"gap":                     gap,
			"marginal_rate":           marginal,
			"tax_saved_component":     taxSaved,
			"recommended_instrument":  "ELSS (3-year lock-in, equity growth)",
		},
	}
}
