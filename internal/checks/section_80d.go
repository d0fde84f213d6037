package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// Section80DCheck identifies health-insurance-premium deduction gaps
// under Section 80D (spec.md §4.3.3).
type Section80DCheck struct{}

func (Section80DCheck) ID() string   { return "80d_check" }
func (Section80DCheck) Name() string { return "Health Insurance (Section 80D)" }

func (Section80DCheck) Run(in Input) model.Finding {
	p := in.Profile
	age := in.Options.AgeCategory()

	selfLimit := constants.Limit80DSelf(in.Options.SelfSenior)
	parentsLimit := constants.Limit80DParents(in.Options.ParentsSenior)
	totalLimit := selfLimit + parentsLimit
	current := p.Deduction80D

	if current >= totalLimit {
		return model.Finding{
			CheckID:    "80d_check",
			CheckName:  "Health Insurance (Section 80D)",
			Status:     model.Optimized,
			Finding:    fmt.Sprintf("80D fully utilized at ₹%d", current),
			Savings:    0,
			Action:     "No action needed",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"self_family_claimed": current,
				"self_family_limit":   selfLimit,
				"parents_limit":       parentsLimit,
				"total_limit":         totalLimit,
			},
		}
	}

	var recommendedPremium int
	var findingText, actionText string
	if current == 0 {
		recommendedPremium = parentsLimit
	} else {
		recommendedPremium = totalLimit - current
	}

	marginal := oldRegimeMarginalRate(p, age)
	taxSaved := componentSavings(recommendedPremium, marginal)

	if current == 0 {
		findingText = fmt.Sprintf(
			"Parents have no health insurance. ₹%d policy = ₹%d tax saving",
			recommendedPremium, taxSaved,
		)
		actionText = "Buy a ₹5-10L family floater health insurance for parents " +
			"(annual premium ~₹20-25K). Claim under Section 80D"
	} else {
		findingText = fmt.Sprintf("₹%d additional 80D deduction available", recommendedPremium)
		actionText = fmt.Sprintf("Increase health insurance coverage to claim additional ₹%d under 80D", recommendedPremium)
	}

	return model.Finding{
		CheckID:   "80d_check",
		CheckName: "Health Insurance (Section 80D)",
		Status:    model.Opportunity,
		Finding:   findingText,
		Savings:   taxSaved,
		Action:    actionText,
		Deadline:  fmt.Sprintf("March 31 (for FY %s deduction)", p.FinancialYear),
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"Section 80D allows deduction for health insurance premiums: up to ₹%d for self/family "+
				"and ₹%d for parents. A family floater for parents costs ~₹25K/year and the effective "+
				"cost after tax saving is only ₹%d.",
			selfLimit, parentsLimit, recommendedPremium-taxSaved,
		),
		Details: map[string]any{
			"self_family_claimed": current,
			"self_family_limit":   selfLimit,
			"parents_claimed":     0,
			"parents_limit":       parentsLimit,
			"parents_senior":      in.Options.ParentsSenior,
			"recommended_premium": recommendedPremium,
			"marginal_rate":       marginal,
			"tax_saved_component": taxSaved,
		},
	}
}
