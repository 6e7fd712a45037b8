// Package watchlist projects watchlist rows into display rows.
package watchlist

import (
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/numeric"
)

// DefaultLimit is the number of watchlist rows shown.
const DefaultLimit = 40

// Row is one displayed watchlist entry.
type Row struct {
	Ticker   string  `json:"ticker"`
	Company  string  `json:"company"`
	Region   string  `json:"region"`
	Sector   string  `json:"sector"`
	Yield    float64 `json:"yield_percent"`
	Priority string  `json:"priority"`
}

// Rows returns the first limit entries of ds; limit <= 0 returns all.
func Rows(ds model.Dataset, limit int) []Row {
	src := ds.Rows
	if limit > 0 && len(src) > limit {
		src = src[:limit]
	}
	out := make([]Row, 0, len(src))
	for _, r := range src {
		out = append(out, Row{
			Ticker:   r.Value(model.FieldTicker, ""),
			Company:  r.Value(model.FieldCompany, ""),
			Region:   r.Value(model.FieldRegion, ""),
			Sector:   r.Value(model.FieldSector, ""),
			Yield:    numeric.Field(r, model.FieldDividendYield),
			Priority: r.Value(model.FieldPriorityToAdd, ""),
		})
	}
	return out
}
