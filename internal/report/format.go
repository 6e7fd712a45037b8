package report

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const currency = money.EUR

// maxMinorUnits bounds amounts that money.Money can hold as int64 cents.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// amount renders v as "1234.56 EUR", the headline figure style.
func amount(v float64) string {
	return fixed(v, 2) + " " + currency
}

// percent renders v with two decimals and a percent sign.
func percent(v float64) string {
	return fixed(v, 2) + "%"
}

// fixed rounds v to places decimals. NaN and infinities print as
// "NaN", "Infinity" and "-Infinity".
func fixed(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// eur renders v with the currency symbol and grouping of EUR. Values that
// are not finite or do not fit in int64 cents fall back to amount.
func eur(v float64) string {
	if _, ok := nonFinite(v); ok {
		return amount(v)
	}
	cur := money.GetCurrency(currency)
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return amount(v)
	}
	return money.New(minor.IntPart(), currency).Display()
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
