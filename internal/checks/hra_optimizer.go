package checks

import (
	"fmt"

	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/taxmath"
)

// HRAOptimizerCheck is display-only: its benefit is already folded into
// RegimeArbitrageCheck's savings, so it always reports savings=0 on
// Opportunity (spec.md §4.3.4).
type HRAOptimizerCheck struct{}

func (HRAOptimizerCheck) ID() string   { return "hra_optimizer" }
func (HRAOptimizerCheck) Name() string { return "HRA Exemption" }

func (HRAOptimizerCheck) Run(in Input) model.Finding {
	p := in.Profile

	if p.HRAReceived <= 0 || p.MonthlyRent <= 0 {
		return model.Finding{
			CheckID:    "hra_optimizer",
			CheckName:  "HRA Exemption",
			Status:     model.NotApplicable,
			Finding:    "No HRA received or no rent paid",
			Savings:    0,
			Action:     "N/A",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"hra_received": p.HRAReceived,
				"monthly_rent": p.MonthlyRent,
			},
		}
	}

	rentAnnual := p.RentPaidAnnual()
	optimal := taxmath.HRAExemption(p.BasicSalary, p.HRAReceived, rentAnnual, p.IsMetro())
	current := p.HRAExemption

	optionA := p.HRAReceived
	optionB := rentAnnual - taxmath.RoundHalfAwayFromZero(0.10*float64(p.BasicSalary))
	metroPct := 0.40
	cityType := "non-metro"
	if p.IsMetro() {
		metroPct = 0.50
		cityType = "metro"
	}
	optionC := taxmath.RoundHalfAwayFromZero(metroPct * float64(p.BasicSalary))

	if optimal <= 0 {
		return model.Finding{
			CheckID:    "hra_optimizer",
			CheckName:  "HRA Exemption",
			Status:     model.NotApplicable,
			Finding:    "Rent is too low relative to basic salary for HRA benefit",
			Savings:    0,
			Action:     "N/A",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"rent_annual":        rentAnnual,
				"hra_received":       p.HRAReceived,
				"optimal_exemption":  0,
			},
		}
	}

	if current > 0 && current >= optimal {
		return model.Finding{
			CheckID:    "hra_optimizer",
			CheckName:  "HRA Exemption",
			Status:     model.Optimized,
			Finding:    fmt.Sprintf("HRA exemption already claimed at ₹%d", current),
			Savings:    0,
			Action:     "No action needed",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"rent_annual":        rentAnnual,
				"hra_received":       p.HRAReceived,
				"current_exemption":  current,
				"optimal_exemption":  optimal,
			},
		}
	}

	return model.Finding{
		CheckID:   "hra_optimizer",
		CheckName: "HRA Exemption",
		Status:    model.Opportunity,
		Finding: fmt.Sprintf(
			"Paying ₹%d/month rent but claiming ₹%d HRA (%s regime). Old regime unlocks ₹%d exemption",
			p.MonthlyRent, current, p.CurrentRegime, optimal,
		),
		Savings: 0,
		Action: "Collect rent receipts and landlord PAN. " +
			"HRA benefit is captured in regime switch recommendation",
		Deadline:   "Include in ITR filing by July 31",
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"HRA exemption = min of three amounts:\n"+
				"  A) Actual HRA received = ₹%d\n"+
				"  B) Rent - 10%% of Basic = ₹%d\n"+
				"  C) %d%% of Basic (%s) = ₹%d\n"+
				"  Exempt amount = ₹%d",
			optionA, optionB, int(metroPct*100), cityType, optionC, optimal,
		),
		Details: map[string]any{
			"rent_annual":              rentAnnual,
			"hra_received":             p.HRAReceived,
			"optimal_exemption":        optimal,
			"current_exemption":        current,
			"is_metro":                 p.IsMetro(),
			"option_a_hra_received":    optionA,
			"option_b_rent_minus_basic": optionB,
			"option_c_percent_basic":   optionC,
			"note":                     "Savings included in regime arbitrage check",
		},
	}
}
