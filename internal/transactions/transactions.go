// Package transactions aggregates brokerage transaction exports into monthly
// cash flow and lifetime dividends per ticker.
package transactions

import (
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/dashfolio-dev/dashfolio/internal/aggregate"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/numeric"
)

// Transaction type markers, matched as substrings of the Type field.
const (
	TypeCashTopUp      = "CASH TOP-UP"
	TypeCashWithdrawal = "CASH WITHDRAWAL"
	TypeDividend       = "DIVIDEND"
)

// DefaultDividendLimit is the number of tickers kept by DividendsByTicker.
const DefaultDividendLimit = 10

// monthKeyLen is the length of a "YYYY-MM" prefix.
const monthKeyLen = 7

// Amount returns the signed amount of a transaction: the Total Amount field
// with the first "EUR" and then the first "USD" removed, coerced to a number.
func Amount(r model.Record) float64 {
	s := r.Value(model.FieldTotalAmount, "")
	s = strings.Replace(s, "EUR", "", 1)
	s = strings.Replace(s, "USD", "", 1)
	return numeric.Coerce(strings.TrimSpace(s))
}

// MonthKey returns the first seven UTF-16 code units of the Date field, the
// way dates are cut in the browser export. A character outside the BMP that
// would be split at the boundary is dropped. Short or missing dates give a
// shorter (possibly empty) key.
func MonthKey(r model.Record) string {
	d := r.Value(model.FieldDate, "")
	units := 0
	for i, c := range d {
		n := utf16.RuneLen(c)
		if n < 0 {
			n = 1
		}
		if units+n > monthKeyLen {
			return d[:i]
		}
		units += n
	}
	return d
}

// IsCashMovement reports whether the row is a top-up or a withdrawal.
func IsCashMovement(r model.Record) bool {
	t := r.Value(model.FieldType, "")
	return strings.Contains(t, TypeCashTopUp) || strings.Contains(t, TypeCashWithdrawal)
}

// IsDividend reports whether the row is a dividend payment.
func IsDividend(r model.Record) bool {
	return strings.Contains(r.Value(model.FieldType, ""), TypeDividend)
}

// CashFlowByMonth sums top-ups and withdrawals per month. Every row registers
// its month, so months containing only other transaction types appear with 0.
// The result is sorted by month key.
func CashFlowByMonth(ds model.Dataset) []model.Bucket {
	byMonth := make(map[string]float64)
	for _, r := range ds.Rows {
		k := MonthKey(r)
		if _, ok := byMonth[k]; !ok {
			byMonth[k] = 0
		}
		if IsCashMovement(r) {
			byMonth[k] += Amount(r)
		}
	}

	months := make([]string, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Strings(months)

	out := make([]model.Bucket, len(months))
	for i, m := range months {
		out[i] = model.Bucket{Key: m, Value: byMonth[m]}
	}
	return out
}

// DividendsByTicker sums dividend amounts per ticker and returns the largest
// limit totals, descending. Ties keep first-occurrence order. A missing or
// empty ticker is reported as model.MissingKey. limit <= 0 keeps every ticker.
func DividendsByTicker(ds model.Dataset, limit int) []model.Bucket {
	byTicker := aggregate.GroupFunc(ds, dividendTicker, Amount)
	return aggregate.Limit(aggregate.SortDesc(byTicker), limit)
}

func dividendTicker(r model.Record) (string, bool) {
	if !IsDividend(r) {
		return "", false
	}
	ticker := r.Value(model.FieldTicker, "")
	if ticker == "" {
		ticker = model.MissingKey
	}
	return ticker, true
}
