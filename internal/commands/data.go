package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/session"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <portfolio|watchlist|transactions> <file-or-url>",
		Short: "Import a CSV or XLSX file and replace that dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}
			ws, err := openWorkspace(cmd, opts)
			if err != nil {
				return err
			}

			snap, _, err := ws.manager.Restore(cmd.Context())
			if err != nil {
				return err
			}
			snap, err = ws.manager.Import(cmd.Context(), snap, kind, resolve(ws.root, args[1]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows into %s\n", snap.Get(kind).Len(), kind)
			return nil
		},
	}
}

func newRestoreCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Show which datasets are cached or autoloaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, opts)
			if err != nil {
				return err
			}
			snap, report, err := ws.manager.Restore(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, kind := range model.Kinds {
				fmt.Fprintf(out, "%s: %d rows (%s)\n", kind, snap.Get(kind).Len(), report[kind])
			}
			return nil
		},
	}
}

func newClearCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, opts)
			if err != nil {
				return err
			}
			if _, err := ws.manager.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	}
}

// restore loads the current snapshot for read-only commands.
func restore(cmd *cobra.Command, opts *rootOptions) (*workspace, session.Snapshot, error) {
	ws, err := openWorkspace(cmd, opts)
	if err != nil {
		return nil, session.Snapshot{}, err
	}
	snap, _, err := ws.manager.Restore(cmd.Context())
	if err != nil {
		return nil, session.Snapshot{}, err
	}
	return ws, snap, nil
}
