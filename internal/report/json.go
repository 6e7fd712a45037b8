package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dashfolio-dev/dashfolio/internal/aggregate"
	"github.com/dashfolio-dev/dashfolio/internal/dashboard"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/watchlist"
)

// number encodes NaN and infinities as null, which encoding/json rejects.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type jsonMetrics struct {
	TotalValue    number `json:"total_value"`
	TotalDividend number `json:"total_dividend"`
	YieldPercent  number `json:"yield_percent"`
}

type jsonBucket struct {
	Key   string `json:"key"`
	Value number `json:"value"`
}

type jsonRanked struct {
	Label string `json:"label"`
	Value number `json:"value"`
}

type jsonPoint struct {
	Month int    `json:"month"`
	Value number `json:"value"`
}

type jsonWatch struct {
	Ticker   string `json:"ticker"`
	Company  string `json:"company"`
	Region   string `json:"region"`
	Sector   string `json:"sector"`
	Yield    number `json:"yield_percent"`
	Priority string `json:"priority"`
}

type jsonView struct {
	Metrics     *jsonMetrics `json:"metrics"`
	Buckets     []jsonBucket `json:"buckets"`
	TopHoldings []jsonRanked `json:"top_holdings"`
	Signals     []jsonBucket `json:"signals"`
	Projection  []jsonPoint  `json:"projection"`
	Watchlist   []jsonWatch  `json:"watchlist"`
	CashFlow    []jsonBucket `json:"cash_flow"`
	Dividends   []jsonBucket `json:"dividends"`
}

// JSON writes v as an indented JSON document. Values that are not finite
// are written as null.
func JSON(w io.Writer, v dashboard.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(v)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func toJSON(v dashboard.View) jsonView {
	out := jsonView{
		Buckets:   buckets(v.Buckets),
		Signals:   buckets(v.Signals),
		CashFlow:  buckets(v.CashFlow),
		Dividends: buckets(v.Dividends),
	}
	if m := v.Metrics; m != nil {
		out.Metrics = &jsonMetrics{
			TotalValue:    number(m.TotalValue),
			TotalDividend: number(m.TotalDividend),
			YieldPercent:  number(m.YieldPercent),
		}
	}
	if v.TopHoldings != nil {
		out.TopHoldings = make([]jsonRanked, len(v.TopHoldings))
		for i, r := range v.TopHoldings {
			out.TopHoldings[i] = rankedJSON(r)
		}
	}
	if v.Projection != nil {
		out.Projection = make([]jsonPoint, len(v.Projection))
		for i, p := range v.Projection {
			out.Projection[i] = jsonPoint{Month: p.Month, Value: number(p.Value)}
		}
	}
	if v.Watchlist != nil {
		out.Watchlist = make([]jsonWatch, len(v.Watchlist))
		for i, r := range v.Watchlist {
			out.Watchlist[i] = watchJSON(r)
		}
	}
	return out
}

func buckets(bs []model.Bucket) []jsonBucket {
	if bs == nil {
		return nil
	}
	out := make([]jsonBucket, len(bs))
	for i, b := range bs {
		out[i] = jsonBucket{Key: b.Key, Value: number(b.Value)}
	}
	return out
}

func rankedJSON(r aggregate.Ranked) jsonRanked {
	return jsonRanked{Label: r.Label, Value: number(r.Value)}
}

func watchJSON(r watchlist.Row) jsonWatch {
	return jsonWatch{
		Ticker:   r.Ticker,
		Company:  r.Company,
		Region:   r.Region,
		Sector:   r.Sector,
		Yield:    number(r.Yield),
		Priority: r.Priority,
	}
}
