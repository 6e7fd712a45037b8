// Package metrics derives headline figures from a portfolio dataset.
package metrics

import (
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/numeric"
)

// Portfolio holds the headline figures of a portfolio.
type Portfolio struct {
	TotalValue    float64 `json:"total_value"`
	TotalDividend float64 `json:"total_dividend"`
	YieldPercent  float64 `json:"yield_percent"`
}

// Compute sums current value and projected dividend over every row and
// derives the dividend yield. The yield is 0 when the total value is not
// positive.
func Compute(ds model.Dataset) Portfolio {
	value := numeric.Sum(ds, model.FieldCurrentValue)
	dividend := numeric.Sum(ds, model.FieldDividend2026)

	var yield float64
	if value > 0 {
		yield = dividend / value * 100
	}
	return Portfolio{
		TotalValue:    value,
		TotalDividend: dividend,
		YieldPercent:  yield,
	}
}
