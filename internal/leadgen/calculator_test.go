package leadgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectSavings_ZeroRatesIsPlainSum(t *testing.T) {
	result := ProjectSavings(SavingsInput{MonthlySaving: 1000, Years: 2})

	assert.Equal(t, 24, result.Months)
	assert.Equal(t, 24000.0, result.ProjectedWealth)
	assert.Equal(t, 24000.0, result.TotalSaved)
	assert.Equal(t, 0.0, result.Growth)
}

func TestProjectSavings_ReturnsCompound(t *testing.T) {
	result := ProjectSavings(SavingsInput{MonthlySaving: 1000, Years: 10, AnnualReturnPct: 12})

	assert.Equal(t, 120, result.Months)
	assert.Equal(t, 120000.0, result.TotalSaved)
	assert.Greater(t, result.ProjectedWealth, result.TotalSaved)
	assert.InDelta(t, result.ProjectedWealth-result.TotalSaved, result.Growth, 0.01)
}

func TestProjectSavings_InflationGrowsContribution(t *testing.T) {
	flat := ProjectSavings(SavingsInput{MonthlySaving: 1000, Years: 5})
	inflated := ProjectSavings(SavingsInput{MonthlySaving: 1000, Years: 5, InflationRatePct: 6})

	assert.Greater(t, inflated.TotalSaved, flat.TotalSaved)
	assert.Greater(t, inflated.ProjectedWealth, flat.ProjectedWealth)
}

func TestProjectSavings_DegenerateInputs(t *testing.T) {
	zero := ProjectSavings(SavingsInput{})
	assert.Equal(t, SavingsResult{}, zero)

	negative := ProjectSavings(SavingsInput{MonthlySaving: -500, Years: -3, AnnualReturnPct: -12})
	assert.Equal(t, SavingsResult{}, negative)
}
