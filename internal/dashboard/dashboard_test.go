package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashfolio-dev/dashfolio/internal/importer"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/projection"
	"github.com/dashfolio-dev/dashfolio/internal/session"
)

func load(t *testing.T, name string) model.Dataset {
	t.Helper()
	ds, err := importer.NewLoader().ParseFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return ds
}

func fullSnapshot(t *testing.T) session.Snapshot {
	return session.Snapshot{
		Portfolio:    load(t, "portfolio.csv"),
		Watchlist:    load(t, "watchlist.csv"),
		Transactions: load(t, "revolut.csv"),
	}
}

func TestBuild_Empty(t *testing.T) {
	v := Build(session.Snapshot{}, Options{})
	assert.False(t, v.HasPortfolio())
	assert.Nil(t, v.Buckets)
	assert.Nil(t, v.Projection)
	assert.Nil(t, v.Watchlist)
	assert.Nil(t, v.CashFlow)
	assert.Nil(t, v.Dividends)
}

func TestBuild_Full(t *testing.T) {
	v := Build(fullSnapshot(t), Options{Params: projection.Params{ReinvestDividends: true}})

	require.True(t, v.HasPortfolio())
	assert.InDelta(t, 10000, v.Metrics.TotalValue, 1e-9)
	assert.InDelta(t, 260, v.Metrics.TotalDividend, 1e-9)
	assert.InDelta(t, 2.6, v.Metrics.YieldPercent, 1e-9)

	assert.Equal(t, []string{"Growth", "Dividend", "Core"}, keys(v.Buckets))
	assert.Equal(t, []string{"HOLD", "BUY", ""}, keys(v.Signals))

	require.Len(t, v.TopHoldings, 6)
	assert.Equal(t, "KO", v.TopHoldings[0].Label)

	require.Len(t, v.Projection, projection.Months+1)
	assert.InDelta(t, 10000, v.Projection[0].Value, 1e-9)
	assert.InDelta(t, 10260, v.Projection[12].Value, 1e-6)

	assert.Len(t, v.Watchlist, 3)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04"}, keys(v.CashFlow))
	assert.Equal(t, []string{"KO", "AAPL"}, keys(v.Dividends))
}

func TestBuild_Limits(t *testing.T) {
	v := Build(fullSnapshot(t), Options{TopHoldings: 2, TopDividends: 1, WatchlistRows: 2})
	assert.Len(t, v.TopHoldings, 2)
	assert.Len(t, v.Dividends, 1)
	assert.Len(t, v.Watchlist, 2)
}

func TestBuild_PortfolioOnlySectionsWithoutPortfolio(t *testing.T) {
	snap := fullSnapshot(t)
	snap.Portfolio = model.Dataset{}

	v := Build(snap, Options{})
	assert.False(t, v.HasPortfolio())
	assert.Nil(t, v.TopHoldings)
	assert.NotEmpty(t, v.Watchlist)
	assert.NotEmpty(t, v.CashFlow)
}

func keys(bs []model.Bucket) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Key
	}
	return out
}
