package leadgen

import "math"

// SavingsInput drives the rooftop-solar savings projection: what a monthly
// electricity-bill saving grows into when invested over a number of years.
type SavingsInput struct {
	MonthlySaving    float64 `json:"monthlySaving"`
	Years            int     `json:"years"`
	AnnualReturnPct  float64 `json:"annualReturnPct"`
	InflationRatePct float64 `json:"inflationRatePct"`
}

// SavingsResult is the projection outcome
type SavingsResult struct {
	ProjectedWealth float64 `json:"projectedWealth"`
	TotalSaved      float64 `json:"totalSaved"`
	Growth          float64 `json:"growth"`
	Months          int     `json:"months"`
}

// ProjectSavings compounds the monthly saving month by month. The return
// rate compounds the running balance; inflation grows the monthly
// contribution itself, since electricity tariffs rise and so does the
// avoided bill. Negative inputs are treated as zero.
func ProjectSavings(input SavingsInput) SavingsResult {
	monthlySaving := math.Max(input.MonthlySaving, 0)
	years := input.Years
	if years < 0 {
		years = 0
	}

	monthlyReturn := math.Max(input.AnnualReturnPct, 0) / 100 / 12
	monthlyInflation := math.Max(input.InflationRatePct, 0) / 100 / 12

	months := years * 12
	wealth := 0.0
	totalSaved := 0.0
	contribution := monthlySaving

	for m := 0; m < months; m++ {
		wealth = wealth*(1+monthlyReturn) + contribution
		totalSaved += contribution
		contribution *= 1 + monthlyInflation
	}

	return SavingsResult{
		ProjectedWealth: round2(wealth),
		TotalSaved:      round2(totalSaved),
		Growth:          round2(wealth - totalSaved),
		Months:          months,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
