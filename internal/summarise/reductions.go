package summarise

import (
	"errors"

	"github.com/pable/go-h2h/internal/model"
)

// ErrEmptyGroup is returned by score reductions that are undefined on
// an empty group. By never builds empty groups, so callers only see it
// from reductions they invoke directly.
var ErrEmptyGroup = errors.New("summarise: empty group")

// Built-in record reductions for the per-game and per-player summary
// layer.
var (
	Count = Reduction[model.Record]{Name: "count", Fn: func(g []model.Record) (float64, error) {
		return float64(len(g)), nil
	}}

	SumScore = Reduction[model.Record]{Name: "sum_score", Fn: func(g []model.Record) (float64, error) {
		var sum float64
		for _, r := range g {
			sum += r.Score
		}
		return sum, nil
	}}

	MeanScore = Reduction[model.Record]{Name: "mean_score", Fn: func(g []model.Record) (float64, error) {
		if len(g) == 0 {
			return 0, ErrEmptyGroup
		}
		var sum float64
		for _, r := range g {
			sum += r.Score
		}
		return sum / float64(len(g)), nil
	}}

	MinScore = Reduction[model.Record]{Name: "min_score", Fn: func(g []model.Record) (float64, error) {
		if len(g) == 0 {
			return 0, ErrEmptyGroup
		}
		min := g[0].Score
		for _, r := range g[1:] {
			if r.Score < min {
				min = r.Score
			}
		}
		return min, nil
	}}

	MaxScore = Reduction[model.Record]{Name: "max_score", Fn: func(g []model.Record) (float64, error) {
		if len(g) == 0 {
			return 0, ErrEmptyGroup
		}
		max := g[0].Score
		for _, r := range g[1:] {
			if r.Score > max {
				max = r.Score
			}
		}
		return max, nil
	}}
)

// CommonReductions is the default set used by the summary commands.
var CommonReductions = []Reduction[model.Record]{Count, MeanScore, SumScore, MinScore, MaxScore}
