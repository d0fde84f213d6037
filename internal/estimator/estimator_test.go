package estimator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spiffler33/taxhawk/internal/model"
)

func TestEstimateSalaryProfileBasicSplit(t *testing.T) {
	p := EstimateSalaryProfile(2_000_000, model.FY2024_25, "mumbai", 30_000, model.RegimeNew, CTCBreakdown{})
	assert.Equal(t, 800_000, p.BasicSalary)
	assert.Equal(t, 400_000, p.HRAReceived)
	assert.True(t, p.GrossSalary < 2_000_000)
}

func TestEstimateHoldingsMidpoint(t *testing.T) {
	specs := []RangeSpec{
		{
			SecurityName:  "Test Fund",
			SecurityType:  model.EquityMF,
			PurchaseFrom:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			PurchaseTo:    time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
			PurchasePrice: 100,
			Quantity:      10,
			CurrentPrice:  120,
		},
	}
	holdings := EstimateHoldings(specs, 0, 0)
	assert.Len(t, holdings.Positions, 1)
	assert.Equal(t, 200.0, holdings.Positions[0].UnrealizedGain())
}
