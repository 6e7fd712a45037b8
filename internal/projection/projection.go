// Package projection simulates twelve months of portfolio growth.
package projection

import (
	"math"

	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/numeric"
)

// Months is the horizon of a run; a run has Months+1 points.
const Months = 12

// Params are the user inputs of a simulation.
type Params struct {
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	ReinvestDividends   bool    `json:"reinvest_dividends"`
}

// ParseParams reads form-style inputs with the same coercion applied to
// dataset fields, so malformed entries count as 0.
func ParseParams(monthly, annualReturn string, reinvest bool) Params {
	return Params{
		MonthlyContribution: numeric.Coerce(monthly),
		AnnualReturnPercent: numeric.Coerce(annualReturn),
		ReinvestDividends:   reinvest,
	}
}

// MonthlyRate converts an annual return percentage to the equivalent
// monthly compounding rate.
func MonthlyRate(annualReturnPercent float64) float64 {
	return math.Pow(1+annualReturnPercent/100, 1.0/12) - 1
}

// Simulate projects the portfolio's current value forward. It returns nil
// for an empty portfolio.
func Simulate(ds model.Dataset, p Params) []model.ProjectionPoint {
	if ds.Empty() {
		return nil
	}
	start := numeric.Sum(ds, model.FieldCurrentValue)
	dividend := numeric.Sum(ds, model.FieldDividend2026)
	return Run(start, dividend, p)
}

// Run emits the value at the start of each month 0..Months, then grows it
// by the monthly rate and adds the contribution and, when reinvesting, a
// twelfth of the annual dividend.
func Run(start, annualDividend float64, p Params) []model.ProjectionPoint {
	var monthlyDividend float64
	if p.ReinvestDividends {
		monthlyDividend = annualDividend / 12
	}
	rate := MonthlyRate(p.AnnualReturnPercent)

	points := make([]model.ProjectionPoint, 0, Months+1)
	value := start
	for m := 0; m <= Months; m++ {
		points = append(points, model.ProjectionPoint{Month: m, Value: value})
		value = value*(1+rate) + p.MonthlyContribution + monthlyDividend
	}
	return points
}
