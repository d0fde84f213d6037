// Package scheduler runs a nightly job that re-evaluates caller-supplied
// profiles with a freshly-derived cg_as_of date, so holding-period
// alerts (spec.md §4.3.5) stay accurate without the caller re-invoking
// the engine by hand (SPEC_FULL.md §11).
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/spiffler33/taxhawk/internal/model"
	"github.com/spiffler33/taxhawk/internal/orchestrator"
	"github.com/spiffler33/taxhawk/pkg/logger"
)

// Subject is one profile/holdings/options tuple the scheduler
// periodically re-evaluates.
type Subject struct {
	Profile  model.SalaryProfile
	Holdings model.Holdings
	Options  model.Options
}

// ResultSink receives the Report produced by each re-evaluation.
type ResultSink func(ctx context.Context, subject Subject, report model.Report)

// Scheduler drives a cron.Cron instance running the re-evaluation job.
type Scheduler struct {
	cron         *cron.Cron
	orchestrator *orchestrator.Orchestrator
	log          zerolog.Logger
}

// New creates a Scheduler with no jobs registered; the cron expression
// is supplied later to ScheduleNightlyReevaluation.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		orchestrator: orchestrator.New(log),
		log:          logger.Scoped(log, "scheduler"),
	}
}

// ScheduleNightlyReevaluation registers a job that re-runs every subject
// in subjects() at the given standard 5-field cron schedule (e.g.
// "0 2 * * *" for 2am daily), deriving a fresh cg_as_of
// (the next upcoming March 31) for each run, and delivering each result
// to sink.
func (s *Scheduler) ScheduleNightlyReevaluation(schedule string, subjects func() []Subject, sink ResultSink) (cron.EntryID, error) {
	return s.cron.AddFunc(schedule, func() {
		ctx := context.Background()
		asOf := nextFYEnd(time.Now())
		for _, subject := range subjects() {
			opts := subject.Options
			opts.CGAsOf = &asOf
			report := s.orchestrator.Evaluate(subject.Profile, subject.Holdings, opts)
			s.log.Info().
				Str("user", subject.Profile.EmployeeName).
				Int("total_savings", report.TotalSavings).
				Msg("nightly reevaluation complete")
			sink(ctx, subject, report)
		}
	})
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops the scheduler without waiting; the returned context is
// done once any job that was running has completed.
func (s *Scheduler) Stop() context.Context { return s.cron.Stop() }

func nextFYEnd(now time.Time) time.Time {
	if now.Month() <= time.March {
		return time.Date(now.Year(), time.March, 31, 0, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year()+1, time.March, 31, 0, 0, 0, 0, now.Location())
}
