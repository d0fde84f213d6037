package checks

import (
	"fmt"
	"time"

	"github.com/spiffler33/taxhawk/internal/constants"
	"github.com/spiffler33/taxhawk/internal/model"
)

// CapitalGainsCheck is regime-independent: LTCG harvesting against the
// annual exemption, holding-period alerts, and loss-harvesting notes
// (spec.md §4.3.5).
type CapitalGainsCheck struct{}

func (CapitalGainsCheck) ID() string   { return "capital_gains" }
func (CapitalGainsCheck) Name() string { return "Capital Gains Optimization" }

func resolveAsOf(override *time.Time, now time.Time) time.Time {
	if override != nil {
		return *override
	}
	if now.Month() <= time.March {
		return time.Date(now.Year(), time.March, 31, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year()+1, time.March, 31, 0, 0, 0, 0, now.Location())
}

func (CapitalGainsCheck) Run(in Input) model.Finding {
	holdings := in.Holdings

	if holdings.IsEmpty() {
		return model.Finding{
			CheckID:    "capital_gains",
			CheckName:  "Capital Gains Optimization",
			Status:     model.NotApplicable,
			Finding:    "No investment holdings to analyze",
			Savings:    0,
			Action:     "N/A",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details:    map[string]any{},
		}
	}

	asOf := resolveAsOf(in.Options.CGAsOf, time.Now())

	var unrealizedLTCG, unrealizedSTCG float64
	var holdingsToHarvest []string
	var holdingPeriodAlerts []map[string]any
	var unrealizedLosses []map[string]any

	for _, h := range holdings.Positions {
		months := h.HoldingMonths(asOf)
		gain := h.UnrealizedGain()
		isLT := h.IsLongTerm(asOf)

		if isLT && gain > 0 {
			unrealizedLTCG += gain
			holdingsToHarvest = append(holdingsToHarvest, h.SecurityName)
		} else if !isLT {
			if gain > 0 {
				unrealizedSTCG += gain
			}
			if months >= 10 && months <= 12 && gain > 0 {
				monthsToLTCG := 13 - months
				stcgTax := roundHalfAwayFromZero(gain * constants.STCGRate * (1 + constants.CessRate))
				holdingPeriodAlerts = append(holdingPeriodAlerts, map[string]any{
					"security":       h.SecurityName,
					"months_held":    months,
					"months_to_ltcg": monthsToLTCG,
					"gain":           gain,
					"stcg_tax":       stcgTax,
					"advice": fmt.Sprintf(
						"Wait %d month(s) before selling to qualify for LTCG rate (12.5%% vs 20%%)",
						monthsToLTCG,
					),
				})
			}
		}

		if gain < 0 {
			unrealizedLosses = append(unrealizedLosses, map[string]any{
				"name":          h.SecurityName,
				"loss":          -gain,
				"is_long_term":  isLT,
			})
		}
	}

	exemptionRemaining := constants.LTCGExemption - holdings.RealizedLTCGThisFY
	if exemptionRemaining < 0 {
		exemptionRemaining = 0
	}
	harvestable := unrealizedLTCG
	if float64(exemptionRemaining) < harvestable {
		harvestable = float64(exemptionRemaining)
	}
	futureTaxSaved := roundHalfAwayFromZero(harvestable * constants.LTCGRate * (1 + constants.CessRate))

	if futureTaxSaved <= 0 && len(holdingPeriodAlerts) == 0 {
		return model.Finding{
			CheckID:    "capital_gains",
			CheckName:  "Capital Gains Optimization",
			Status:     model.Optimized,
			Finding:    "No harvestable LTCG or holding period optimizations found",
			Savings:    0,
			Action:     "No action needed",
			Deadline:   "N/A",
			Confidence: model.Definite,
			Details: map[string]any{
				"unrealized_ltcg":      unrealizedLTCG,
				"unrealized_stcg":      unrealizedSTCG,
				"ltcg_exemption_limit": constants.LTCGExemption,
			},
		}
	}

	action := "Monitor holdings for LTCG harvesting opportunity"
	if len(holdingsToHarvest) > 0 {
		action = fmt.Sprintf(
			"Before March 31: Sell %v. Immediately repurchase. This resets cost basis and uses "+
				"your ₹%dK annual LTCG exemption",
			holdingsToHarvest, constants.LTCGExemption/1000,
		)
	}

	details := map[string]any{
		"unrealized_ltcg":        unrealizedLTCG,
		"unrealized_stcg":        unrealizedSTCG,
		"realized_ltcg_this_fy":  holdings.RealizedLTCGThisFY,
		"ltcg_exemption_limit":   constants.LTCGExemption,
		"exemption_used":         harvestable,
		"exemption_remaining":    float64(exemptionRemaining) - harvestable,
		"future_tax_saved":       futureTaxSaved,
		"holdings_to_harvest":    holdingsToHarvest,
	}
	if len(holdingPeriodAlerts) > 0 {
		details["holding_period_alerts"] = holdingPeriodAlerts
	}
	if len(unrealizedLosses) > 0 {
		details["unrealized_losses"] = unrealizedLosses
	}

	return model.Finding{
		CheckID:   "capital_gains",
		CheckName: "Capital Gains Optimization",
		Status:    model.Opportunity,
		Finding: fmt.Sprintf(
			"₹%.0f unrealized LTCG can be harvested tax-free. Saves ₹%d in future taxes",
			harvestable, futureTaxSaved,
		),
		Savings:    futureTaxSaved,
		Action:     action,
		Deadline:   "March 31 (end of financial year)",
		Confidence: model.Definite,
		Explanation: fmt.Sprintf(
			"You have ₹%.0f in unrealized long-term capital gains, well under the ₹%d annual "+
				"exemption. By selling and immediately repurchasing (legal in India — no wash sale "+
				"rule), you reset your cost basis higher and avoid 12.5%% tax on these gains in the future.",
			unrealizedLTCG, constants.LTCGExemption,
		),
		Details: details,
	}
}
