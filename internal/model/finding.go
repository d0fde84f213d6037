package model

import "time"

// Finding is the uniform output shape every check returns (spec.md §3).
// Savings is always >= 0; it is 0 whenever Status != Opportunity, except
// for the display-only checks (hra_optimizer, home_loan_check) which
// report savings=0 on Opportunity by design — their benefit is already
// counted inside the regime_arbitrage finding.
type Finding struct {
	CheckID     string
	CheckName   string
	Status      FindingStatus
	Finding     string
	Savings     int
	Action      string
	Deadline    string
	Confidence  Confidence
	Explanation string
	Details     map[string]any
}

// Options carries the per-call knobs the checks need beyond the profile
// and holdings (spec.md §6): whether the taxpayer or their parents are
// senior citizens for 80D limit purposes, and an optional override for
// the capital-gains check's as_of date.
type Options struct {
	ParentsSenior bool
	SelfSenior    bool
	CGAsOf        *time.Time
}

// AgeCategory derives the old-regime age bracket from Options.SelfSenior.
// The spec only distinguishes BelowSixty/Senior via this flag; SuperSenior
// has no corresponding boundary Option and is reserved for callers that
// construct an AgeCategory directly.
func (o Options) AgeCategory() AgeCategory {
	if o.SelfSenior {
		return Senior
	}
	return BelowSixty
}

// Report is the orchestrator's final output (spec.md §3).
type Report struct {
	ReportID          string
	UserName          string
	FinancialYear     FinancialYear
	CurrentRegime     Regime
	RecommendedRegime Regime
	TotalSavings      int
	Checks            []Finding
	Summary           string
	Disclaimer        string
}
