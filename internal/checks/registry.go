// Package checks implements the seven independent tax-optimization checks
// of spec.md §4.3. Each check is a function of a salary profile,
// holdings, and options — it reports a Finding and never mutates its
// inputs or talks to the outside world. The one ambient input is the
// clock: capital_gains reads time.Now() to derive its as_of date when
// Options.CGAsOf is nil.
package checks

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/pkg/logger"
)

// Input bundles everything a check needs to evaluate a taxpayer.
type Input struct {
	Profile  model.SalaryProfile
	Holdings model.Holdings
	Options  model.Options
}

// Check is the interface every tax-optimization check implements.
type Check interface {
	ID() string
	Name() string
	Run(in Input) model.Finding
}

// Registry holds the set of checks to run, in registration order.
type Registry struct {
	mu     sync.RWMutex
	checks []Check
	byID   map[string]Check
	log    zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		byID: make(map[string]Check),
		log:  logger.Scoped(log, "check_registry"),
	}
}

// Register adds a check. Re-registering an ID replaces the prior check.
func (r *Registry) Register(c Check) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID()]; !exists {
		r.checks = append(r.checks, c)
	} else {
		for i, existing := range r.checks {
			if existing.ID() == c.ID() {
				r.checks[i] = c
				break
			}
		}
	}
	r.byID[c.ID()] = c
	r.log.Debug().Str("id", c.ID()).Str("name", c.Name()).Msg("registered check")
}

// Get retrieves a check by ID, or false if unregistered.
func (r *Registry) Get(id string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// List returns every registered check in registration order.
func (r *Registry) List() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// RunAll executes every registered check against in and returns the
// findings sorted by descending savings, ties broken by registration
// order (Go's sort.SliceStable preserves the original relative order of
// equal elements).
func (r *Registry) RunAll(in Input) []model.Finding {
	checks := r.List()
	findings := make([]model.Finding, len(checks))
	for i, c := range checks {
		findings[i] = c.Run(in)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Savings > findings[j].Savings
	})
	return findings
}

// NewPopulatedRegistry creates a registry with all seven checks
// registered (spec.md §4.3.1–§4.3.7).
func NewPopulatedRegistry(log zerolog.Logger) *Registry {
	r := NewRegistry(log)
	r.Register(RegimeArbitrageCheck{})
	r.Register(Section80CCheck{})
	r.Register(Section80DCheck{})
	r.Register(HRAOptimizerCheck{})
	r.Register(CapitalGainsCheck{})
	r.Register(NPSCheck{})
	r.Register(HomeLoanCheck{})
	return r
}
