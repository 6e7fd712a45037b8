package session

import "github.com/dashfolio-dev/dashfolio/internal/model"

// Snapshot is the current set of imported datasets. Imports replace one
// dataset wholesale and return a new Snapshot.
type Snapshot struct {
	Portfolio    model.Dataset
	Watchlist    model.Dataset
	Transactions model.Dataset
}

// Get returns the dataset of the given kind.
func (s Snapshot) Get(kind model.Kind) model.Dataset {
	switch kind {
	case model.KindPortfolio:
		return s.Portfolio
	case model.KindWatchlist:
		return s.Watchlist
	case model.KindTransactions:
		return s.Transactions
	}
	return model.Dataset{}
}

// With returns a copy of s with the dataset of kind replaced by ds.
func (s Snapshot) With(kind model.Kind, ds model.Dataset) Snapshot {
	switch kind {
	case model.KindPortfolio:
		s.Portfolio = ds
	case model.KindWatchlist:
		s.Watchlist = ds
	case model.KindTransactions:
		s.Transactions = ds
	}
	return s
}

// Empty reports whether every dataset is empty.
func (s Snapshot) Empty() bool {
	return s.Portfolio.Empty() && s.Watchlist.Empty() && s.Transactions.Empty()
}
