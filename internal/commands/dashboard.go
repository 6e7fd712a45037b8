package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dashfolio-dev/dashfolio/internal/config"
	"github.com/dashfolio-dev/dashfolio/internal/dashboard"
	"github.com/dashfolio-dev/dashfolio/internal/projection"
	"github.com/dashfolio-dev/dashfolio/internal/report"
)

// viewFlags are the flags shared by the commands that render a view.
type viewFlags struct {
	format       string
	monthly      string
	annualReturn string
	reinvest     bool
	limit        int
}

func (f *viewFlags) addFormat(fs *pflag.FlagSet) {
	fs.StringVar(&f.format, "format", "text", "output format: text, markdown or json")
}

func (f *viewFlags) addProjection(fs *pflag.FlagSet) {
	fs.StringVar(&f.monthly, "monthly", "", "monthly contribution in EUR (default from config)")
	fs.StringVar(&f.annualReturn, "annual-return", "", "expected annual return in percent (default from config)")
	fs.BoolVar(&f.reinvest, "reinvest", true, "reinvest projected dividends (default from config)")
}

// options merges the flags that were set over the configured defaults.
func (f *viewFlags) options(cmd *cobra.Command, cfg *config.Config) dashboard.Options {
	monthly := cfg.Projection.MonthlyContribution
	if cmd.Flags().Changed("monthly") {
		monthly = f.monthly
	}
	annual := cfg.Projection.AnnualReturnPercent
	if cmd.Flags().Changed("annual-return") {
		annual = f.annualReturn
	}
	reinvest := cfg.Projection.ReinvestDividends
	if cmd.Flags().Changed("reinvest") {
		reinvest = f.reinvest
	}

	return dashboard.Options{
		Params:        projection.ParseParams(monthly, annual, reinvest),
		TopHoldings:   cfg.Display.TopHoldings,
		TopDividends:  cfg.Display.TopDividends,
		WatchlistRows: cfg.Display.WatchlistRows,
	}
}

// runView builds the dashboard and renders the part of it selected by pick.
func runView(cmd *cobra.Command, opts *rootOptions, f *viewFlags, pick func(dashboard.View) dashboard.View, limit func(*dashboard.Options, int)) error {
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}
	ws, snap, err := restore(cmd, opts)
	if err != nil {
		return err
	}

	o := f.options(cmd, ws.cfg)
	if limit != nil && cmd.Flags().Changed("limit") {
		limit(&o, f.limit)
	}
	v := dashboard.Build(snap, o)
	if pick != nil {
		v = pick(v)
	}
	return report.Render(cmd.OutOrStdout(), v, format)
}

func newDashboardCommand(opts *rootOptions) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"report"},
		Short:   "Render every dashboard view",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, f, nil, nil)
		},
	}
	f.addFormat(cmd.Flags())
	f.addProjection(cmd.Flags())
	return cmd
}

func newSimulateCommand(opts *rootOptions) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the portfolio value over the next 12 months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, f, func(v dashboard.View) dashboard.View {
				return dashboard.View{Projection: v.Projection}
			}, nil)
		},
	}
	f.addFormat(cmd.Flags())
	f.addProjection(cmd.Flags())
	return cmd
}

func newCashFlowCommand(opts *rootOptions) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Show net cash top-ups and withdrawals per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, f, func(v dashboard.View) dashboard.View {
				return dashboard.View{CashFlow: v.CashFlow}
			}, nil)
		},
	}
	f.addFormat(cmd.Flags())
	return cmd
}

func newDividendsCommand(opts *rootOptions) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "dividends",
		Short: "Show lifetime dividends per ticker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, f, func(v dashboard.View) dashboard.View {
				return dashboard.View{Dividends: v.Dividends}
			}, func(o *dashboard.Options, n int) { o.TopDividends = n })
		},
	}
	f.addFormat(cmd.Flags())
	cmd.Flags().IntVar(&f.limit, "limit", 0, "number of tickers (default from config)")
	return cmd
}

func newWatchlistCommand(opts *rootOptions) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Show the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts, f, func(v dashboard.View) dashboard.View {
				return dashboard.View{Watchlist: v.Watchlist}
			}, func(o *dashboard.Options, n int) { o.WatchlistRows = n })
		},
	}
	f.addFormat(cmd.Flags())
	cmd.Flags().IntVar(&f.limit, "limit", 0, "number of rows (default from config)")
	return cmd
}
