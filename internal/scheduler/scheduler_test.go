package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffler33/taxhawk/internal/model"
)

func TestNextFYEndBeforeMarch(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	got := nextFYEnd(now)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestNextFYEndAfterMarch(t *testing.T) {
	now := time.Date(2025, time.August, 6, 0, 0, 0, 0, time.UTC)
	got := nextFYEnd(now)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestScheduleNightlyReevaluationRunsSubjects(t *testing.T) {
	s := New(zerolog.Nop())

	profile := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_500_000,
		BasicSalary:     600_000,
		ProfessionalTax: 2_400,
		CurrentRegime:   model.RegimeNew,
		City:            "mumbai",
	}
	subject := Subject{Profile: profile}

	var got model.Report
	entryID, err := s.ScheduleNightlyReevaluation("0 2 * * *", func() []Subject {
		return []Subject{subject}
	}, func(ctx context.Context, sub Subject, report model.Report) {
		got = report
	})
	require.NoError(t, err)

	// Invoke the registered job directly rather than waiting for the
	// real cron tick — this exercises the same closure Start() would
	// eventually fire.
	entry := s.cron.Entry(entryID)
	require.NotNil(t, entry.Job)
	entry.Job.Run()

	assert.NotEmpty(t, got.Checks)
}

func TestScheduleNightlyReevaluationInvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())
	_, err := s.ScheduleNightlyReevaluation("not a schedule", func() []Subject { return nil }, func(ctx context.Context, sub Subject, report model.Report) {})
	assert.Error(t, err)
}
