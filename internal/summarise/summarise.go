// Package summarise is the generic grouped-aggregate facility: given a
// slice, a grouping key, and named reduction functions, it produces one
// row of scalars per distinct group. The h2h package consumes it for
// pair grouping; Games and Players expose the per-item summary layer
// over competition records.
package summarise

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pable/go-h2h/internal/model"
)

// Reduction is one named scalar computed over a group of items.
type Reduction[T any] struct {
	Name string
	Fn   func(group []T) (float64, error)
}

// Row is one group's output: the group key plus one value per
// requested reduction, in request order.
type Row[K comparable] struct {
	Key    K
	Values []float64
}

// ReduceError reports a reduction that failed on one group.
type ReduceError[K comparable] struct {
	Key  K
	Name string
	Err  error
}

func (e *ReduceError[K]) Error() string {
	return fmt.Sprintf("summarise: reduction %q failed for group %v: %v", e.Name, e.Key, e.Err)
}

func (e *ReduceError[K]) Unwrap() error { return e.Err }

// By groups items by key and applies each reduction to each group.
// Rows are returned in first-appearance order of their group key; a
// failing reduction aborts the whole call with a *ReduceError.
func By[T any, K comparable](items []T, key func(T) K, reductions []Reduction[T]) ([]Row[K], error) {
	groups := make(map[K][]T)
	var order []K
	for _, it := range items {
		k := key(it)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], it)
	}

	rows := make([]Row[K], 0, len(order))
	for _, k := range order {
		values := make([]float64, len(reductions))
		for i, r := range reductions {
			v, err := r.Fn(groups[k])
			if err != nil {
				return nil, &ReduceError[K]{Key: k, Name: r.Name, Err: err}
			}
			values[i] = v
		}
		rows = append(rows, Row[K]{Key: k, Values: values})
	}
	return rows, nil
}

// Games computes one summary row per game, in sorted game order.
func Games(records []model.Record, reductions []Reduction[model.Record]) ([]Row[string], error) {
	rows, err := By(records, func(r model.Record) string { return r.Game }, reductions)
	if err != nil {
		return nil, fmt.Errorf("summarise games: %w", err)
	}
	sortRows(rows)
	return rows, nil
}

// Players computes one summary row per player, in sorted player order.
// Unnamed participants are summarised as one shared Unknown bucket.
func Players(records []model.Record, reductions []Reduction[model.Record]) ([]Row[string], error) {
	rows, err := By(records, playerBucket, reductions)
	if err != nil {
		return nil, fmt.Errorf("summarise players: %w", err)
	}
	sortRows(rows)
	return rows, nil
}

func playerBucket(r model.Record) string {
	if !r.Known() {
		return model.Unknown
	}
	return r.Player
}

func sortRows(rows []Row[string]) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
}

// JoinGames left-joins game summary values back onto records as extra
// columns named after the reductions. Records whose game has no summary
// row keep their original extra columns untouched.
func JoinGames(records []model.Record, names []string, summary []Row[string]) []model.Record {
	return join(records, names, summary, func(r model.Record) string { return r.Game })
}

// JoinPlayers left-joins player summary values back onto records, with
// unnamed participants matched against the Unknown bucket.
func JoinPlayers(records []model.Record, names []string, summary []Row[string]) []model.Record {
	return join(records, names, summary, playerBucket)
}

func join(records []model.Record, names []string, summary []Row[string], key func(model.Record) string) []model.Record {
	byKey := make(map[string][]float64, len(summary))
	for _, row := range summary {
		byKey[row.Key] = row.Values
	}

	out := make([]model.Record, len(records))
	for i, r := range records {
		r.Extra = model.CloneExtra(r.Extra)
		if values, ok := byKey[key(r)]; ok {
			if r.Extra == nil {
				r.Extra = make(map[string]string, len(names))
			}
			for j, name := range names {
				if j < len(values) {
					r.Extra[name] = strconv.FormatFloat(values[j], 'g', -1, 64)
				}
			}
		}
		out[i] = r
	}
	return out
}
