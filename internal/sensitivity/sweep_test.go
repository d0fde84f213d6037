package sensitivity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiffler33/taxhawk/internal/model"
)

func TestSweepMonthlyRentVariesSavings(t *testing.T) {
	p := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_500_000,
		BasicSalary:     600_000,
		HRAReceived:     300_000,
		ProfessionalTax: 2_400,
		City:            "mumbai",
		MonthlyRent:     10_000,
	}
	// Rent of 10K and 15K/month leaves the optimized old regime dearer than
	// the new regime (savings 0); 25K/month makes it ₹16,120 cheaper.
	summary := SweepMonthlyRent(p, []int{0, 5_000, 15_000})
	assert.Len(t, summary.Points, 3)
	assert.Greater(t, summary.StdDev, 0.0)
}

func TestSweepGrossSalary(t *testing.T) {
	p := model.SalaryProfile{
		FinancialYear:   model.FY2024_25,
		GrossSalary:     1_000_000,
		BasicSalary:     400_000,
		ProfessionalTax: 2_400,
		City:            "mumbai",
	}
	summary := SweepGrossSalary(p, []int{-100_000, 0, 100_000, 500_000})
	assert.Len(t, summary.Points, 4)
}
