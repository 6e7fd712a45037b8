package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dashfolio-dev/dashfolio/internal/importlog"
)

func newLogCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "List past imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, opts)
			if err != nil {
				return err
			}
			entries, err := importlog.Read(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No imports recorded")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tBATCH\tDATASET\tROWS\tSOURCE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					e.Timestamp.Format(time.RFC3339), e.BatchID, e.Dataset, e.Rows, e.Source)
			}
			return tw.Flush()
		},
	}
}
