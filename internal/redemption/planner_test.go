package redemption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRedemptionTaxS4(t *testing.T) {
	result := ComputeRedemptionTax(Input{
		PlannedLTCG:        300_000,
		ExemptionRemaining: 125_000,
		ExemptionNextFY:    125_000,
	})

	assert.Equal(t, 175_000, result.OneFYTaxable)
	assert.Equal(t, 22_750, result.OneFYTax)
	assert.Equal(t, 125_000, result.SplitFY1Taxable)
	assert.Equal(t, 50_000, result.SplitFY2Taxable)
	assert.Equal(t, 6_500, result.SplitTotalTax)
	assert.True(t, result.SplitBeneficial)
	assert.Equal(t, 16_250, result.SplitSavings)
}

func TestComputeRedemptionTaxClampsNegative(t *testing.T) {
	result := ComputeRedemptionTax(Input{PlannedLTCG: -100})
	assert.Equal(t, 0, result.PlannedLTCG)
	assert.Equal(t, 0, result.OneFYTax)
}

func TestComputeRedemptionTaxZeroPlannedNoDivideByZero(t *testing.T) {
	result := ComputeRedemptionTax(Input{PlannedLTCG: 0, ExemptionRemaining: 50_000})
	assert.Equal(t, 0.0, result.OneFYEffectiveRate)
	assert.Equal(t, 0.0, result.SplitEffectiveRate)
}
