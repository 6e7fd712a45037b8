// Package aggregate groups dataset rows and sums numeric fields per group.
package aggregate

import (
	"sort"

	"github.com/dashfolio-dev/dashfolio/internal/model"
	"github.com/dashfolio-dev/dashfolio/internal/numeric"
)

// GroupSum groups rows by the value of groupKey and sums the coerced value of
// valueKey per group. Rows missing groupKey fall into model.MissingKey.
// Buckets are returned in order of first occurrence.
func GroupSum(ds model.Dataset, groupKey, valueKey string) []model.Bucket {
	return GroupFunc(ds,
		func(r model.Record) (string, bool) { return r.Value(groupKey, model.MissingKey), true },
		func(r model.Record) float64 { return numeric.Field(r, valueKey) },
	)
}

// GroupFunc sums value(row) per key(row) in order of first occurrence.
// Rows for which key reports false are skipped.
func GroupFunc(ds model.Dataset, key func(model.Record) (string, bool), value func(model.Record) float64) []model.Bucket {
	index := make(map[string]int)
	var buckets []model.Bucket
	for _, r := range ds.Rows {
		k, ok := key(r)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, model.Bucket{Key: k})
		}
		buckets[i].Value += value(r)
	}
	return buckets
}

// SortDesc returns a copy of buckets ordered by value, largest first.
// Equal values keep their input order. A nil input stays nil.
func SortDesc(buckets []model.Bucket) []model.Bucket {
	if buckets == nil {
		return nil
	}
	out := make([]model.Bucket, len(buckets))
	copy(out, buckets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// Limit truncates buckets to at most n entries. n <= 0 means no limit.
func Limit(buckets []model.Bucket, n int) []model.Bucket {
	if n > 0 && len(buckets) > n {
		return buckets[:n]
	}
	return buckets
}

// Ranked is a row paired with its coerced ranking value.
type Ranked struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Top ranks rows by the coerced value of valueKey, largest first, and keeps
// the first n. Ties keep source order. The label is labelKey, "" when absent.
func Top(ds model.Dataset, labelKey, valueKey string, n int) []Ranked {
	out := make([]Ranked, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		out = append(out, Ranked{
			Label: r.Value(labelKey, ""),
			Value: numeric.Field(r, valueKey),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
