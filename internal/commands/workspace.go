package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dashfolio-dev/dashfolio/internal/config"
	"github.com/dashfolio-dev/dashfolio/internal/importer"
	"github.com/dashfolio-dev/dashfolio/internal/logging"
	"github.com/dashfolio-dev/dashfolio/internal/session"
	"github.com/dashfolio-dev/dashfolio/internal/store"
)

// workspace is a resolved workspace directory with its config and session
// manager.
type workspace struct {
	root    string
	cfg     *config.Config
	manager *session.Manager
}

func openWorkspace(cmd *cobra.Command, opts *rootOptions) (*workspace, error) {
	root, err := filepath.Abs(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	storeDir := resolve(root, cfg.Store.Dir)
	log.Debug().Str("root", root).Str("config", cfgPath).Str("store", storeDir).Msg("workspace opened")

	st := store.NewFileStore(storeDir)
	manager := session.NewManager(st, importer.NewLoader(), session.Options{
		Autoload: session.Sources{
			Portfolio: resolve(root, cfg.Autoload.Portfolio),
			Watchlist: resolve(root, cfg.Autoload.Watchlist),
		},
		LogRoot: root,
		Logger:  log,
	})

	return &workspace{root: root, cfg: cfg, manager: manager}, nil
}

// resolve makes a relative path relative to root. URLs and empty values
// are returned unchanged.
func resolve(root, p string) string {
	if p == "" || importer.IsURL(p) || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
