// Package orchestrator runs the full set of checks against a taxpayer
// and assembles the final Report, applying the regime-interdependency
// and no-double-counting rules of spec.md §4.4.
package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spiffler33/taxhawk/internal/checks"
	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/pkg/logger"
)

// deductionBasedChecks are zeroed out when the recommended regime is
// "new" — their benefit only exists under the old regime and is already
// captured inside the regime_arbitrage savings.
var deductionBasedChecks = map[string]bool{
	"80c_gap":         true,
	"80d_check":       true,
	"hra_optimizer":   true,
	"nps_check":       true,
	"home_loan_check": true,
}

// Orchestrator wires a check Registry to produce Reports.
type Orchestrator struct {
	registry *checks.Registry
	log      zerolog.Logger
}

// New creates an Orchestrator backed by the full seven-check registry.
func New(log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		registry: checks.NewPopulatedRegistry(log),
		log:      logger.Scoped(log, "orchestrator"),
	}
}

// Evaluate runs every check and assembles the Report (spec.md §4.4).
func (o *Orchestrator) Evaluate(profile model.SalaryProfile, holdings model.Holdings, options model.Options) model.Report {
	return o.EvaluateStreaming(profile, holdings, options, func(model.Finding) {})
}

// EvaluateStreaming runs every check exactly as Evaluate does, additionally
// invoking onFinding once per check (in registry order) after the
// regime-interdependency suppression of spec.md §4.4 step 4 has already
// been applied to it — so a caller streaming progress to a client (see
// internal/httpapi's websocket handler) never emits a pre-suppression
// number that would contradict the final Report or double-count against
// regime_arbitrage's savings.
func (o *Orchestrator) EvaluateStreaming(profile model.SalaryProfile, holdings model.Holdings, options model.Options, onFinding func(model.Finding)) model.Report {
	in := checks.Input{Profile: profile, Holdings: holdings, Options: options}
	all := o.registry.List()

	findings := make([]model.Finding, len(all))
	for i, c := range all {
		findings[i] = c.Run(in)
	}

	recommendedRegime, regimeFinding, cgFinding := classify(findings)
	if recommendedRegime == model.RegimeNew {
		suppressDeductionChecks(findings)
	}

	for i := range findings {
		onFinding(findings[i])
	}

	totalSavings := 0
	if regimeFinding != nil {
		totalSavings += regimeFinding.Savings
	}
	if cgFinding != nil {
		totalSavings += cgFinding.Savings
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Savings > findings[j].Savings
	})

	summary := buildSummary(profile, findings, totalSavings, recommendedRegime)

	return model.Report{
		ReportID:          uuid.NewString(),
		UserName:          profile.EmployeeName,
		FinancialYear:     profile.FinancialYear,
		CurrentRegime:     profile.CurrentRegime,
		RecommendedRegime: recommendedRegime,
		TotalSavings:      totalSavings,
		Checks:            findings,
		Summary:           summary,
		Disclaimer: "TaxHawk provides informational tax-planning estimates based on the figures " +
			"you supply. It is not tax, legal, or financial advice; verify every recommendation " +
			"with a qualified chartered accountant before filing.",
	}
}

// classify scans findings for the regime_arbitrage and capital_gains
// checks, returning the recommended regime and pointers into findings
// for the two checks that feed totalSavings (spec.md §4.4 step 5).
func classify(findings []model.Finding) (model.Regime, *model.Finding, *model.Finding) {
	recommendedRegime := model.RegimeNew
	var regimeFinding, cgFinding *model.Finding
	for i := range findings {
		switch findings[i].CheckID {
		case "regime_arbitrage":
			regimeFinding = &findings[i]
			if regime, ok := findings[i].Details["recommended_regime"].(string); ok && regime == "old" {
				recommendedRegime = model.RegimeOld
			}
		case "capital_gains":
			cgFinding = &findings[i]
		}
	}
	return recommendedRegime, regimeFinding, cgFinding
}

// suppressDeductionChecks zeroes out the deduction-based checks in place,
// rewriting their Finding text when they would otherwise have shown a
// positive savings figure (spec.md §4.4 step 4).
func suppressDeductionChecks(findings []model.Finding) {
	for i := range findings {
		if !deductionBasedChecks[findings[i].CheckID] {
			continue
		}
		original := findings[i].Savings
		findings[i].Status = model.NotApplicable
		findings[i].Savings = 0
		if original > 0 {
			findings[i].Finding = fmt.Sprintf("Not applicable under new regime (would save ₹%d under old)", original)
		}
	}
}

func buildSummary(profile model.SalaryProfile, findings []model.Finding, totalSavings int, recommendedRegime model.Regime) string {
	var lines []string

	if totalSavings > 0 {
		lines = append(lines, fmt.Sprintf(
			"TaxHawk found ₹%d in potential tax savings for %s (FY %s).",
			totalSavings, profile.EmployeeName, profile.FinancialYear,
		))

		if recommendedRegime == model.RegimeOld && profile.CurrentRegime == model.RegimeNew {
			lines = append(lines, "The biggest opportunity: switching from the new tax regime "+
				"(employer default) to the old regime with optimized deductions.")
		}

		var opportunityCount int
		var opportunityLines []string
		for _, f := range findings {
			if f.Status != model.Opportunity {
				continue
			}
			opportunityCount++
			if f.Savings > 0 {
				opportunityLines = append(opportunityLines, fmt.Sprintf("  - %s: ₹%d", f.CheckName, f.Savings))
			}
		}
		if opportunityCount > 0 {
			lines = append(lines, fmt.Sprintf("\n%d optimization(s) found:", opportunityCount))
			lines = append(lines, opportunityLines...)
		}
	} else {
		lines = append(lines, fmt.Sprintf(
			"Your tax setup is already well-optimized for FY %s. No significant savings opportunities found.",
			profile.FinancialYear,
		))
	}

	return strings.Join(lines, "\n")
}
