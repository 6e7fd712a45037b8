// Package dashboard recomputes every dashboard view from a snapshot.
package dashboard

import (
	"github.com/dashfolio-dev/dashfolio/internal/aggregate"
	"github.com/dashfolio-dev/dashfolio/internal/metrics"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/projection"
	"github.com/dashfolio-dev/dashfolio/internal/session"
	"github.com/dashfolio-dev/dashfolio/internal/transactions"
	"github.com/dashfolio-dev/dashfolio/internal/watchlist"
)

// DefaultTopHoldings is the number of holdings in the top-holdings view.
const DefaultTopHoldings = 10

// Options controls the projection inputs and the size of ranked views.
// Zero limits fall back to the package defaults.
type Options struct {
	Params        projection.Params
	TopHoldings   int
	TopDividends  int
	WatchlistRows int
}

func (o Options) withDefaults() Options {
	if o.TopHoldings <= 0 {
		o.TopHoldings = DefaultTopHoldings
	}
	if o.TopDividends <= 0 {
		o.TopDividends = transactions.DefaultDividendLimit
	}
	if o.WatchlistRows <= 0 {
		o.WatchlistRows = watchlist.DefaultLimit
	}
	return o
}

// View is the full set of dashboard series. Portfolio views are nil when
// the portfolio is empty, and likewise for the watchlist and transactions.
type View struct {
	Metrics     *metrics.Portfolio      `json:"metrics"`
	Buckets     []model.Bucket          `json:"buckets"`
	TopHoldings []aggregate.Ranked      `json:"top_holdings"`
	Signals     []model.Bucket          `json:"signals"`
	Projection  []model.ProjectionPoint `json:"projection"`
	Watchlist   []watchlist.Row         `json:"watchlist"`
	CashFlow    []model.Bucket          `json:"cash_flow"`
	Dividends   []model.Bucket          `json:"dividends"`
}

// HasPortfolio reports whether the portfolio views were computed.
func (v View) HasPortfolio() bool { return v.Metrics != nil }

// Build computes every view of snap from scratch.
func Build(snap session.Snapshot, opts Options) View {
	opts = opts.withDefaults()
	var v View

	if p := snap.Portfolio; !p.Empty() {
		m := metrics.Compute(p)
		v.Metrics = &m
		v.Buckets = aggregate.GroupSum(p, model.FieldBucket, model.FieldCurrentValue)
		v.TopHoldings = aggregate.Top(p, model.FieldTicker, model.FieldCurrentValue, opts.TopHoldings)
		v.Signals = aggregate.GroupSum(p, model.FieldBuySignal, model.FieldCurrentValue)
		v.Projection = projection.Simulate(p, opts.Params)
	}
	if w := snap.Watchlist; !w.Empty() {
		v.Watchlist = watchlist.Rows(w, opts.WatchlistRows)
	}
	if tx := snap.Transactions; !tx.Empty() {
		v.CashFlow = transactions.CashFlowByMonth(tx)
		v.Dividends = transactions.DividendsByTicker(tx, opts.TopDividends)
	}
	return v
}
