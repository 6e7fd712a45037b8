// Package session owns loading, caching and replacing the imported datasets.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dashfolio-dev/dashfolio/internal/importer"
	"github.com/dashfolio-dev/dashfolio/internal/importlog"
	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/store"
)

// Origin describes where a restored dataset came from.
type Origin string

const (
	OriginNone     Origin = "none"
	OriginStore    Origin = "store"
	OriginAutoload Origin = "autoload"
)

// RestoreReport records the origin of each dataset after Restore.
type RestoreReport map[model.Kind]Origin

// Sources are the autoload locations for datasets the cache does not hold.
// Only the portfolio and the watchlist are autoloaded.
type Sources struct {
	Portfolio string
	Watchlist string
}

// Options configures a Manager.
type Options struct {
	Autoload Sources
	// LogRoot is the directory holding logs/import-log.csv. Empty disables
	// the import log.
	LogRoot string
	Logger  zerolog.Logger
	Now     func() time.Time
}

// Manager persists snapshots to a Store and rebuilds them on restore.
type Manager struct {
	store  store.Store
	loader *importer.Loader
	opts   Options
}

// NewManager creates a Manager.
func NewManager(st store.Store, loader *importer.Loader, opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{store: st, loader: loader, opts: opts}
}

// StoreKey returns the cache key of a dataset kind.
func StoreKey(kind model.Kind) string {
	switch kind {
	case model.KindPortfolio:
		return store.KeyPortfolio
	case model.KindWatchlist:
		return store.KeyWatchlist
	case model.KindTransactions:
		return store.KeyTransactions
	}
	return ""
}

// Restore reads every dataset from the store. An empty portfolio or
// watchlist is then autoloaded from its configured source; autoload
// failures are logged and leave the dataset empty. Unreadable cache entries
// are logged and treated as empty.
func (m *Manager) Restore(ctx context.Context) (Snapshot, RestoreReport, error) {
	var snap Snapshot
	report := make(RestoreReport, len(model.Kinds))

	for _, kind := range model.Kinds {
		ds, ok, err := m.read(kind)
		if err != nil {
			return Snapshot{}, nil, err
		}
		report[kind] = OriginNone
		if ok && !ds.Empty() {
			report[kind] = OriginStore
			m.opts.Logger.Info().Str("dataset", string(kind)).Int("rows", ds.Len()).Msg("restored from store")
		}
		snap = snap.With(kind, ds)
	}

	autoload := []struct {
		kind   model.Kind
		source string
	}{
		{model.KindPortfolio, m.opts.Autoload.Portfolio},
		{model.KindWatchlist, m.opts.Autoload.Watchlist},
	}
	for _, a := range autoload {
		if !snap.Get(a.kind).Empty() || a.source == "" {
			continue
		}
		ds, err := m.loader.Load(ctx, a.source)
		if err != nil {
			m.opts.Logger.Warn().Err(err).Str("dataset", string(a.kind)).Str("source", a.source).Msg("autoload failed")
			continue
		}
		if ds.Empty() {
			continue
		}
		snap = snap.With(a.kind, ds)
		report[a.kind] = OriginAutoload
		m.opts.Logger.Info().Str("dataset", string(a.kind)).Str("source", a.source).Int("rows", ds.Len()).Msg("autoloaded")
	}

	return snap, report, nil
}

func (m *Manager) read(kind model.Kind) (model.Dataset, bool, error) {
	data, ok, err := m.store.Get(StoreKey(kind))
	if err != nil {
		return model.Dataset{}, false, fmt.Errorf("reading %s: %w", kind, err)
	}
	if !ok {
		return model.Dataset{}, false, nil
	}
	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		m.opts.Logger.Warn().Err(err).Str("dataset", string(kind)).Msg("discarding unreadable cache entry")
		return model.Dataset{}, false, nil
	}
	return ds, true, nil
}

// Save writes every dataset of snap to the store.
func (m *Manager) Save(snap Snapshot) error {
	for _, kind := range model.Kinds {
		data, err := json.Marshal(snap.Get(kind))
		if err != nil {
			return fmt.Errorf("encoding %s: %w", kind, err)
		}
		if err := m.store.Set(StoreKey(kind), data); err != nil {
			return fmt.Errorf("saving %s: %w", kind, err)
		}
	}
	return nil
}

// Clear removes every cached dataset and returns the empty snapshot.
func (m *Manager) Clear() (Snapshot, error) {
	for _, kind := range model.Kinds {
		if err := m.store.Delete(StoreKey(kind)); err != nil {
			return Snapshot{}, fmt.Errorf("clearing %s: %w", kind, err)
		}
	}
	m.opts.Logger.Info().Msg("cache cleared")
	return Snapshot{}, nil
}

// Import parses source, replaces the dataset of kind in snap, saves the
// result and records the import.
func (m *Manager) Import(ctx context.Context, snap Snapshot, kind model.Kind, source string) (Snapshot, error) {
	ds, err := m.loader.Load(ctx, source)
	if err != nil {
		return snap, fmt.Errorf("importing %s: %w", kind, err)
	}

	next := snap.With(kind, ds)
	if err := m.Save(next); err != nil {
		return snap, err
	}

	if m.opts.LogRoot != "" {
		entry := importlog.NewEntry(m.opts.Now(), kind, source, ds.Len())
		if err := importlog.Append(m.opts.LogRoot, []importlog.Entry{entry}); err != nil {
			m.opts.Logger.Warn().Err(err).Msg("failed to write import log")
		}
	}

	m.opts.Logger.Info().Str("dataset", string(kind)).Str("source", source).Int("rows", ds.Len()).Msg("imported and saved")
	return next, nil
}
