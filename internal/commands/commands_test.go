package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashfolio-dev/dashfolio/internal/buildinfo"
	"github.com/dashfolio-dev/dashfolio/internal/commands"
	"github.com/dashfolio-dev/dashfolio/internal/config"
	"github.com/dashfolio-dev/dashfolio/internal/importer"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/report"
)

func runDashfolio(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runDashfolioStderr(t, args...)
	return out, err
}

func runDashfolioStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return p
}

func initWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runDashfolio(t, "init", dir)
	require.NoError(t, err)
	return dir
}

func importAll(t *testing.T, dir string) {
	t.Helper()
	for kind, file := range map[string]string{
		"portfolio":    "portfolio.csv",
		"watchlist":    "watchlist.csv",
		"transactions": "revolut.csv",
	} {
		_, err := runDashfolio(t, "--dir", dir, "import", kind, testdata(t, file))
		require.NoError(t, err)
	}
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, err := runDashfolio(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized dashfolio workspace")

	for _, d := range []string{".dashfolio", "data", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := initWorkspace(t)

	_, err := runDashfolio(t, "init", dir)
	assert.ErrorIs(t, err, commands.ErrAlreadyInitialized)

	_, err = runDashfolio(t, "init", dir, "--force")
	assert.NoError(t, err)
}

func TestImport(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runDashfolio(t, "--dir", dir, "import", "portfolio", testdata(t, "portfolio.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Imported 6 rows into portfolio\n", out)

	_, err = os.Stat(filepath.Join(dir, ".dashfolio", "portfolio_data_v1.json"))
	assert.NoError(t, err)
}

func TestImport_Errors(t *testing.T) {
	dir := initWorkspace(t)

	_, err := runDashfolio(t, "--dir", dir, "import", "ledger", testdata(t, "portfolio.csv"))
	assert.ErrorIs(t, err, model.ErrUnknownKind)

	_, err = runDashfolio(t, "--dir", dir, "import", "portfolio", "holdings.pdf")
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)

	_, err = runDashfolio(t, "--dir", dir, "import", "portfolio")
	assert.Error(t, err)
}

func TestRestore(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runDashfolio(t, "--dir", dir, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "portfolio: 0 rows (none)")

	importAll(t, dir)
	out, err = runDashfolio(t, "--dir", dir, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "portfolio: 6 rows (store)")
	assert.Contains(t, out, "watchlist: 3 rows (store)")
	assert.Contains(t, out, "transactions: 7 rows (store)")
}

func TestRestore_Autoload(t *testing.T) {
	dir := initWorkspace(t)
	cfg := config.Default()
	cfg.Autoload.Portfolio = testdata(t, "portfolio.csv")
	cfg.Autoload.Watchlist = ""
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err := runDashfolio(t, "--dir", dir, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "portfolio: 6 rows (autoload)")
	assert.Contains(t, out, "watchlist: 0 rows (none)")
}

func TestClear(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "clear")
	require.NoError(t, err)
	assert.Equal(t, "Cache cleared\n", out)

	out, err = runDashfolio(t, "--dir", dir, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "transactions: 0 rows (none)")
}

func TestDashboard_JSON(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "dashboard", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Metrics struct {
			TotalValue    float64 `json:"total_value"`
			TotalDividend float64 `json:"total_dividend"`
			YieldPercent  float64 `json:"yield_percent"`
		} `json:"metrics"`
		Buckets    []model.Bucket          `json:"buckets"`
		Projection []model.ProjectionPoint `json:"projection"`
		Watchlist  []json.RawMessage       `json:"watchlist"`
		CashFlow   []model.Bucket          `json:"cash_flow"`
		Dividends  []model.Bucket          `json:"dividends"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.InDelta(t, 10000, doc.Metrics.TotalValue, 1e-9)
	assert.InDelta(t, 260, doc.Metrics.TotalDividend, 1e-9)
	assert.InDelta(t, 2.6, doc.Metrics.YieldPercent, 1e-9)
	assert.Len(t, doc.Buckets, 3)
	assert.Len(t, doc.Projection, 13)
	assert.Len(t, doc.Watchlist, 3)
	assert.Len(t, doc.CashFlow, 4)
	assert.Len(t, doc.Dividends, 2)
}

func TestDashboard_Markdown(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "report", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| Total value | 10000.00 EUR |")
	assert.Contains(t, out, "## Watchlist")
}

func TestDashboard_EmptyWorkspace(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runDashfolio(t, "--dir", dir, "dashboard", "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, report.NoData+"\n", out)
}

func TestDashboard_BadFormat(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runDashfolio(t, "--dir", dir, "dashboard", "--format", "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestSimulate(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "simulate", "--format", "json",
		"--monthly", "100", "--annual-return", "0", "--reinvest=false")
	require.NoError(t, err)

	var doc struct {
		Metrics    *json.RawMessage        `json:"metrics"`
		Projection []model.ProjectionPoint `json:"projection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Nil(t, doc.Metrics)
	require.Len(t, doc.Projection, 13)
	assert.InDelta(t, 10000, doc.Projection[0].Value, 1e-9)
	assert.InDelta(t, 11200, doc.Projection[12].Value, 1e-6)
}

func TestSimulate_ConfigDefaults(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	cfg := config.Default()
	cfg.Projection.MonthlyContribution = "50,5"
	cfg.Projection.ReinvestDividends = false
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err := runDashfolio(t, "--dir", dir, "simulate", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Projection []model.ProjectionPoint `json:"projection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Projection, 13)
	assert.InDelta(t, 10000+12*50.5, doc.Projection[12].Value, 1e-6)
}

func TestCashFlowAndDividends(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "cashflow", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| 2024-01 | 1000.00 |")
	assert.Contains(t, out, "| 2024-04 | 0.00 |")
	assert.NotContains(t, out, "# Portfolio")

	out, err = runDashfolio(t, "--dir", dir, "dividends", "--format", "markdown", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "| KO | 15.52 |")
	assert.NotContains(t, out, "AAPL")
}

func TestWatchlist(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "watchlist", "--format", "markdown", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "| PEP | PepsiCo | US | Consumer Staples | 3.4 | High |")
	assert.Contains(t, out, "MUV2")
	assert.NotContains(t, out, "NESN")
}

func TestLog(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runDashfolio(t, "--dir", dir, "log")
	require.NoError(t, err)
	assert.Equal(t, "No imports recorded\n", out)

	importAll(t, dir)
	out, err = runDashfolio(t, "--dir", dir, "log")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, "header + 3 imports")
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Contains(t, out, "revolut.csv")
}

func TestLogLevelFlag(t *testing.T) {
	dir := initWorkspace(t)
	_, err := runDashfolio(t, "--dir", dir, "--log-level", "chatty", "restore")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runDashfolio(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, buildinfo.String())
}

func TestDebugLogShowsWorkspace(t *testing.T) {
	dir := initWorkspace(t)

	_, stderr, err := runDashfolioStderr(t, "--dir", dir, "--log-level", "debug", "restore")
	require.NoError(t, err)
	assert.Contains(t, stderr, "workspace opened")
	assert.Contains(t, stderr, filepath.Join(dir, ".dashfolio"))

	_, stderr, err = runDashfolioStderr(t, "--dir", dir, "restore")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "workspace opened")
}

func TestSimulate_NonFiniteProjection(t *testing.T) {
	dir := initWorkspace(t)
	importAll(t, dir)

	out, err := runDashfolio(t, "--dir", dir, "simulate", "--format", "markdown", "--annual-return", "-150")
	require.NoError(t, err)
	assert.Contains(t, out, "| M0 |")
	assert.Contains(t, out, "| M1 | NaN EUR |")

	out, err = runDashfolio(t, "--dir", dir, "simulate", "--format", "json", "--annual-return", "-150")
	require.NoError(t, err)
	var doc struct {
		Projection []struct {
			Value *float64 `json:"value"`
		} `json:"projection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Projection, 13)
	assert.NotNil(t, doc.Projection[0].Value)
	assert.Nil(t, doc.Projection[12].Value)
}
