package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind names one of the three imported tables.
type Kind string

const (
	KindPortfolio    Kind = "portfolio"
	KindWatchlist    Kind = "watchlist"
	KindTransactions Kind = "transactions"
)

// Kinds lists every dataset kind in display order.
var Kinds = []Kind{KindPortfolio, KindWatchlist, KindTransactions}

// ParseKind resolves a user-supplied dataset name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPortfolio, KindWatchlist, KindTransactions:
		return Kind(s), nil
	case "tx", "revolut":
		return KindTransactions, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ErrUnknownKind is returned by ParseKind for unrecognised dataset names.
var ErrUnknownKind = errors.New("unknown dataset")

// Dataset is the ordered sequence of Records of one imported table.
// Rows keep source order; Columns is the source header order, if known.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// NewDataset wraps rows in a Dataset.
func NewDataset(rows ...Record) Dataset {
	return Dataset{Rows: rows}
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.Rows) }

// Empty reports whether the dataset has no rows.
func (d Dataset) Empty() bool { return len(d.Rows) == 0 }

// MarshalJSON writes the dataset as an array of row objects.
func (d Dataset) MarshalJSON() ([]byte, error) {
	rows := d.Rows
	if rows == nil {
		rows = []Record{}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON reads an array of row objects. Columns are rebuilt from the
// first-seen order of field names across rows.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var rows []Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	seen := make(map[string]bool)
	var cols []string
	for _, r := range rows {
		for _, f := range r.keys {
			if !seen[f] {
				seen[f] = true
				cols = append(cols, f)
			}
		}
	}
	*d = Dataset{Columns: cols, Rows: rows}
	return nil
}
