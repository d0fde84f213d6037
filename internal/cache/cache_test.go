package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffler33/taxhawk/internal/model"
)

func TestStorePutGetRoundtrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	profile := model.SalaryProfile{FinancialYear: model.FY2024_25, GrossSalary: 1_500_000}
	key, err := Key(profile, model.Holdings{}, model.Options{})
	require.NoError(t, err)

	ctx := context.Background()
	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	report := model.Report{ReportID: "r1", UserName: "Priya Sharma", TotalSavings: 20_982}
	require.NoError(t, store.Put(ctx, key, report))

	got, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, report.ReportID, got.ReportID)
	assert.Equal(t, report.TotalSavings, got.TotalSavings)
}

func TestKeyStableAcrossCalls(t *testing.T) {
	profile := model.SalaryProfile{FinancialYear: model.FY2024_25, GrossSalary: 1_500_000}
	k1, err := Key(profile, model.Holdings{}, model.Options{})
	require.NoError(t, err)
	k2, err := Key(profile, model.Holdings{}, model.Options{})
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}
