package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dashfolio-dev/dashfolio/internal/aggregate"
	"github.com/dashfolio-dev/dashfolio/internal/dashboard"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/watchlist"
)

// NoData is printed when a view has nothing to show.
const NoData = "No data loaded. Import a portfolio, watchlist or transactions file first."

// Markdown renders every non-empty section of v as a Markdown document.
func Markdown(v dashboard.View) string {
	var b strings.Builder
	empty := true

	section := func(render func(io.Writer)) {
		if !empty {
			b.WriteString("\n")
		}
		empty = false
		render(&b)
	}

	if v.Metrics != nil {
		section(func(w io.Writer) { writeMetrics(w, v) })
	}
	if v.Buckets != nil {
		section(func(w io.Writer) { writeBuckets(w, "Allocation by bucket", "Bucket", v.Buckets, eur) })
	}
	if v.TopHoldings != nil {
		section(func(w io.Writer) { writeTop(w, v.TopHoldings) })
	}
	if v.Signals != nil {
		section(func(w io.Writer) { writeBuckets(w, "Allocation by buy signal", "Signal", v.Signals, eur) })
	}
	if v.Projection != nil {
		section(func(w io.Writer) { writeProjection(w, v.Projection) })
	}
	if v.Watchlist != nil {
		section(func(w io.Writer) { writeWatchlist(w, v.Watchlist) })
	}
	if v.CashFlow != nil {
		section(func(w io.Writer) { writeBuckets(w, "Cash flow by month", "Month", v.CashFlow, plain) })
	}
	if v.Dividends != nil {
		section(func(w io.Writer) { writeBuckets(w, "Dividends by ticker", "Ticker", v.Dividends, plain) })
	}

	if empty {
		return NoData + "\n"
	}
	return b.String()
}

// plain renders transaction amounts, which mix currencies, without a symbol.
func plain(v float64) string { return fixed(v, 2) }

func writeMetrics(w io.Writer, v dashboard.View) {
	fmt.Fprintf(w, "# Portfolio\n\n")
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Total value | %s |\n", amount(v.Metrics.TotalValue))
	fmt.Fprintf(w, "| Dividends 2026 | %s |\n", amount(v.Metrics.TotalDividend))
	fmt.Fprintf(w, "| Dividend yield | %s |\n", percent(v.Metrics.YieldPercent))
}

func writeBuckets(w io.Writer, title, label string, buckets []model.Bucket, format func(float64) string) {
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| %s | Value |\n", label)
	fmt.Fprintln(w, "|:---|---:|")
	for _, bk := range buckets {
		fmt.Fprintf(w, "| %s | %s |\n", cell(bk.Key), format(bk.Value))
	}
}

func writeTop(w io.Writer, top []aggregate.Ranked) {
	fmt.Fprintf(w, "## Top holdings\n\n")
	fmt.Fprintln(w, "| # | Ticker | Value |")
	fmt.Fprintln(w, "|---:|:---|---:|")
	for i, r := range top {
		fmt.Fprintf(w, "| %d | %s | %s |\n", i+1, cell(r.Label), eur(r.Value))
	}
}

func writeProjection(w io.Writer, points []model.ProjectionPoint) {
	fmt.Fprintf(w, "## 12-month projection\n\n")
	fmt.Fprintln(w, "| Month | Value |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, p := range points {
		fmt.Fprintf(w, "| M%d | %s |\n", p.Month, eur(p.Value))
	}
}

func writeWatchlist(w io.Writer, rows []watchlist.Row) {
	fmt.Fprintf(w, "## Watchlist\n\n")
	fmt.Fprintln(w, "| Ticker | Company | Region | Sector | Yield% | Priority |")
	fmt.Fprintln(w, "|:---|:---|:---|:---|---:|:---|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			cell(r.Ticker),
			cell(r.Company),
			cell(r.Region),
			cell(r.Sector),
			fixed(r.Yield, 1),
			cell(r.Priority),
		)
	}
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

func cell(s string) string {
	return cellEscaper.Replace(s)
}
